package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/vkotov/stride/internal/constants"
)

type DoctorCmd struct{}

// Run reports storage health and warns when another stride process is
// running: the document store is last-write-wins, so two concurrent
// writers can silently drop each other's changes.
func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("stride doctor")
	fmt.Println()

	doc, err := ctx.open()
	if err != nil {
		fmt.Printf("  [FAIL] storage: %v\n", err)
		return nil
	}
	fmt.Printf("  [ OK ] storage loads (%s)\n", ctx.ConfigPath)
	fmt.Printf("  [ OK ] document: %d goals, %d habits, %d wishes, %d archived\n",
		len(doc.Goals), len(doc.Habits), len(doc.Wishes), len(doc.CompletedItems))

	bad := 0
	for _, h := range doc.Habits {
		for date := range h.History {
			if len(date) != len(constants.DateFormat) {
				bad++
			}
		}
	}
	if bad > 0 {
		fmt.Printf("  [WARN] %d history keys are not ISO dates\n", bad)
	} else {
		fmt.Println("  [ OK ] habit history keys are well-formed")
	}

	procs, err := ps.Processes()
	if err != nil {
		fmt.Printf("  [WARN] could not scan processes: %v\n", err)
		return nil
	}
	others := 0
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			others++
		}
	}
	if others > 0 {
		fmt.Printf("  [WARN] %d other stride process(es) running — writes are last-write-wins\n", others)
	} else {
		fmt.Println("  [ OK ] no other stride process running")
	}
	return nil
}
