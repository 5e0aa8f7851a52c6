package gotree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	root := New("cycles")
	a := root.Add("A > B > A")
	a.Add("A -> B x | y")
	a.Add("B -> A z | w")
	root.Add("C > C")

	assert.Equal(t, `cycles
├── A > B > A
│   ├── A -> B x | y
│   └── B -> A z | w
└── C > C
`, root.Print())
}

func TestPrintMultiline(t *testing.T) {
	root := New("root")
	root.Add("one\ntwo")
	sub := root.Add("sub")
	sub.Add("leaf")

	assert.Equal(t, `root
├── one
│   two
└── sub
    └── leaf
`, root.Print())
}
