// Command cli is a terminal client for the embridge backend. It mirrors
// what the browser app does: register/login store the session token in a
// local slot, protected commands attach it as a bearer credential, and
// logout clears it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	clientapi "github.com/claranceatgalvanize/embridge/internal/client/api"
	"github.com/claranceatgalvanize/embridge/internal/client/config"
	"github.com/claranceatgalvanize/embridge/internal/client/session"
)

const usage = `usage: cli <command> [args]

commands:
  register            create an account and log in
  login               log in with email and password
  whoami              show the decoded claims of the stored token
  profile             fetch the profile from the server (requires login)
  jobs [location]     list job postings
  job <id>            show one job posting
  logout              clear the stored token
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	store, err := session.NewFileStore(cfg.TokenPath)
	if err != nil {
		fatal(err)
	}
	client := clientapi.NewClient(cfg.ServerURL, session.NewManager(store))

	ctx := context.Background()
	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		fatal(err)
	}
}

func run(ctx context.Context, client *clientapi.Client, command string, args []string) error {
	switch command {
	case "register":
		name, err := prompt("Name: ")
		if err != nil {
			return err
		}
		email, err := prompt("Email: ")
		if err != nil {
			return err
		}
		pass, err := promptPassword()
		if err != nil {
			return err
		}
		if err := client.Register(ctx, name, email, pass); err != nil {
			return err
		}
		fmt.Println("registered and logged in")
		return nil

	case "login":
		email, err := prompt("Email: ")
		if err != nil {
			return err
		}
		pass, err := promptPassword()
		if err != nil {
			return err
		}
		if err := client.Login(ctx, email, pass); err != nil {
			return err
		}
		fmt.Println("logged in")
		return nil

	case "whoami":
		// Display-only decode of the stored token; the server still
		// verifies the signature on every protected request.
		claims := client.Session().UserDetails()
		if claims == nil || !client.Session().IsLoggedIn() {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s> (id %s), session expires %s\n",
			claims.Name, claims.Email, claims.Subject, claims.ExpiresAt.Time.Local())
		return nil

	case "profile":
		if !client.Session().IsLoggedIn() {
			return fmt.Errorf("not logged in")
		}
		p, err := client.GetProfile(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("%s <%s> (id %s)\n", p.Name, p.Email, p.ID)
		return nil

	case "jobs":
		location := ""
		if len(args) > 0 {
			location = args[0]
		}
		jobs, err := client.Jobs(ctx, location)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			fmt.Println("no postings found")
			return nil
		}
		for _, j := range jobs {
			fmt.Printf("%s  %-40s %s (%s)\n", j.ID, j.Title, j.Company, j.Location)
		}
		return nil

	case "job":
		if len(args) != 1 {
			return fmt.Errorf("usage: cli job <id>")
		}
		j, err := client.Job(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s at %s (%s)\n", j.Title, j.Company, j.Location)
		if j.ApplyURL != "" {
			fmt.Printf("apply: %s\n", j.ApplyURL)
		}
		fmt.Println(j.Description)
		return nil

	case "logout":
		if err := client.Logout(); err != nil {
			return err
		}
		fmt.Println("logged out")
		return nil

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword() (string, error) {
	fmt.Print("Password: ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
