package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/suhani1709/studyflow/internal/cli"
	"github.com/suhani1709/studyflow/internal/constants"
	"github.com/suhani1709/studyflow/internal/keyring"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
	}

	// Check 2: no other running instance (SQLite is single-writer)
	if others, err := findOtherInstances(); err != nil {
		fmt.Printf("⚠ Concurrent instances: UNKNOWN\n")
		fmt.Printf("   %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Concurrent instances: WARNING\n")
		fmt.Printf("   %d other %s process(es) running (pids %v)\n", len(others), constants.AppName, others)
	} else {
		fmt.Printf("✓ Concurrent instances: OK\n")
	}

	// Check 3: OS keyring (only needed for PostgreSQL backends)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: UNAVAILABLE (only needed for PostgreSQL)\n")
	}

	// Check 4: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("⚠ Clock: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	_, err := ctx.Store.GetAllTasks()
	return err
}

// findOtherInstances returns pids of other processes sharing our
// executable name.
func findOtherInstances() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var pids []int
	for _, p := range procs {
		if p.Pid() == os.Getpid() {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock reads %s, which looks wrong; streak day boundaries depend on it", now.Format(constants.DateFormat))
	}
	return nil
}
