package launcher

import "os/exec"

type Bemenu struct {
	args []string
}

func NewBemenu(args []string) *Bemenu {
	return &Bemenu{args: args}
}

func (b *Bemenu) Show(items []string) (Selection, error) {
	return runSelector(exec.Command("bemenu", b.args...), items)
}

func (b *Bemenu) Name() string {
	return "bemenu"
}

func (b *Bemenu) IsAvailable() bool {
	return commandExists("bemenu")
}
