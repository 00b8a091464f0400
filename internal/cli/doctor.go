package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/jmsalazar/thirty/internal/auth"
	"github.com/jmsalazar/thirty/internal/constants"
	"github.com/jmsalazar/thirty/internal/keyring"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: session
	if username, err := ctx.Sessions.Current(); err != nil {
		if errors.Is(err, auth.ErrNoSession) {
			fmt.Printf("⊘ Session: none (run 'thirty login')\n")
		} else {
			fmt.Printf("⚠ Session: WARNING\n")
			fmt.Printf("   %v\n", err)
		}
	} else {
		fmt.Printf("✓ Session: logged in as %s\n", username)
	}

	// Check 3: keyring availability (needed only for the Postgres backend)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: available\n")
	} else {
		fmt.Printf("⊘ OS keyring: unavailable (Postgres backend will need --conn)\n")
	}

	// Check 4: concurrent processes. Two processes sharing a store race
	// each other and the last write wins, so warn when another copy runs.
	if others, err := findOtherInstances(); err != nil {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   Could not list processes: %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Concurrent processes: %d other %s process(es) running (PIDs %v)\n",
			len(others), constants.AppName, others)
		fmt.Printf("   Concurrent writes to the same storage are last-write-wins\n")
	} else {
		fmt.Printf("✓ Concurrent processes: none\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed")
	return nil
}

func findOtherInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	var pids []int
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}
