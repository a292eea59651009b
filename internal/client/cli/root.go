package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	s := string(a.screenNow())
	if user := a.auth.User(); user != nil {
		s = user.Username + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the interactive shell on stdin until EOF or exit.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to the DuckyCart companion (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
