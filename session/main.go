// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// TestMain integration

package session

import (
	"fmt"
	"io"
	"os"
)

// TestingM is the part of *testing.M that Main needs
type TestingM interface {
	Run() int
}

// Main configures s, runs the tests and tears the session down.
// It returns the exit code for os.Exit:
//
//	func TestMain(m *testing.M) {
//		os.Exit(session.Main(m, session.New(session.Options{}, nil, nil)))
//	}
func Main(m TestingM, s *Session) int {
	return run(m, s, os.Stderr)
}

func run(m TestingM, s *Session, out io.Writer) (code int) {
	if _, err := s.Configure(); err != nil {
		fmt.Fprintf(out, "tempdir: configuration failed: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, s.ReportHeader())

	defer func() {
		if err := s.Teardown(); err != nil {
			fmt.Fprintf(out, "tempdir: teardown failed: %v\n", err)
			if code == 0 {
				code = 1
			}
		}
	}()

	return m.Run()
}
