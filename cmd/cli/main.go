// Command cli is a terminal front-end for the activities API: it lists the
// roster, signs students up, and cancels registrations.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mergington/activities/internal/client"
	"github.com/mergington/activities/internal/view"
)

type Args struct {
	ServerURL string
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := parseArgs()

	api, err := client.New(args.ServerURL)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	stdin := bufio.NewScanner(os.Stdin)
	confirm := func(prompt string) bool {
		fmt.Printf("%s [y/N] ", prompt)
		if !stdin.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(stdin.Text()))
		return answer == "y" || answer == "yes"
	}

	status := view.NewStatusArea(view.DefaultMessageTTL)
	controller := view.NewController(api, os.Stdout, status, confirm)

	ctx := context.Background()
	controller.Refresh(ctx)

	fmt.Println(`Commands: list | signup <number> <email> | cancel <number> <email> | quit`)
	for {
		printStatus(status)
		fmt.Print("> ")
		if !stdin.Scan() {
			break
		}

		fields := strings.Fields(stdin.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			controller.Refresh(ctx)
		case "signup", "cancel":
			name, email, err := parseTarget(controller.Cards(), fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if fields[0] == "signup" {
				controller.SubmitSignup(ctx, name, email)
			} else {
				controller.CancelParticipant(ctx, name, email)
			}
		case "quit", "exit":
			return nil
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}

	return stdin.Err()
}

// parseTarget resolves "<number> <email>" arguments against the rendered
// cards
func parseTarget(cards []view.Card, fields []string) (name, email string, err error) {
	if len(fields) != 3 {
		return "", "", fmt.Errorf("usage: %s <number> <email>", fields[0])
	}

	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 1 || n > len(cards) {
		return "", "", fmt.Errorf("no activity numbered %q, run list first", fields[1])
	}

	return cards[n-1].Name, fields[2], nil
}

func printStatus(status *view.StatusArea) {
	if msg, ok := status.Current(); ok {
		fmt.Printf("[%s] %s\n", msg.Kind, msg.Text)
	}
}

func parseArgs() Args {
	var args Args
	flag.StringVar(&args.ServerURL, "server", "http://localhost:8080", "activities API base URL")
	flag.Parse()
	return args
}
