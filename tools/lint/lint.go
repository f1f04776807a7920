// Command lint runs the formatting and static checks over the module.
package main

import (
	"fmt"
	"os"
	"os/exec"
)

type step struct {
	name string
	cmd  string
	args []string
}

var steps = []step{
	{"go fmt", "go", []string{"fmt", "./..."}},
	{"go vet", "go", []string{"vet", "./..."}},
	{"golangci-lint", "golangci-lint", []string{"run", "./..."}},
	{"install staticcheck", "go", []string{"install", "honnef.co/go/tools/cmd/staticcheck@latest"}},
	{"staticcheck", "staticcheck", []string{"./..."}},
	{"install gofumpt", "go", []string{"install", "mvdan.cc/gofumpt@latest"}},
	{"gofumpt", "gofumpt", []string{"-l", "-w", "."}},
}

func run(s step) error {
	command := exec.Command(s.cmd, s.args...)
	command.Stdout = os.Stdout
	command.Stderr = os.Stderr
	if err := command.Run(); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}

func main() {
	failed := 0
	for _, s := range steps {
		fmt.Printf("Running %s...\n", s.name)
		if err := run(s); err != nil {
			fmt.Println(err)
			failed++
		}
	}

	if failed > 0 {
		fmt.Printf("%d of %d checks failed\n", failed, len(steps))
		os.Exit(1)
	}
	fmt.Println("All checks completed!")
}
