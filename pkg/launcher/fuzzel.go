package launcher

import "os/exec"

type Fuzzel struct {
	args []string
}

func NewFuzzel(args []string) *Fuzzel {
	return &Fuzzel{args: args}
}

func (f *Fuzzel) Show(items []string) (Selection, error) {
	args := append([]string{}, f.args...)
	args = append(args, "--dmenu")

	return runSelector(exec.Command("fuzzel", args...), items)
}

func (f *Fuzzel) Name() string {
	return "fuzzel"
}

func (f *Fuzzel) IsAvailable() bool {
	return commandExists("fuzzel")
}
