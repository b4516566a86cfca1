package launcher

import "os/exec"

type Rofi struct {
	args []string
}

func NewRofi(args []string) *Rofi {
	return &Rofi{args: args}
}

func (r *Rofi) Show(items []string) (Selection, error) {
	args := append([]string{}, r.args...)
	args = append(args, "-dmenu")

	return runSelector(exec.Command("rofi", args...), items)
}

func (r *Rofi) Name() string {
	return "rofi"
}

func (r *Rofi) IsAvailable() bool {
	return commandExists("rofi")
}
