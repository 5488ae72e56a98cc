// Command shell is an interactive administrative console pre-loaded with the
// store handles. It talks to the same database file as the server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pneumatic/guestbook/internal/core/domain"
	"github.com/pneumatic/guestbook/internal/core/ports"
	"github.com/pneumatic/guestbook/internal/infrastructure/config"
	"github.com/pneumatic/guestbook/internal/infrastructure/db/sqlite"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	db, err := sqlite.Connect(cfg.Database.Path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}

	users := sqlite.NewUserRepository(db)
	roles := sqlite.NewRoleRepository(db)

	fmt.Printf("guestbook shell — database %s\n", cfg.Database.Path)
	fmt.Println(`type "help" for commands`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "help":
			printHelp()
		case "users":
			listUsers(ctx, users)
		case "roles":
			listRoles(ctx, roles)
		case "add":
			addUser(ctx, users, arg)
		case "find":
			findUser(ctx, users, arg)
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Print(`commands:
  users        list all users
  roles        list all roles
  add <name>   create a user
  find <name>  look a user up by exact username
  quit         leave the shell
`)
}

func listUsers(ctx context.Context, repo ports.UserRepository) {
	users, err := repo.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(users) == 0 {
		fmt.Println("no users")
		return
	}
	for _, u := range users {
		fmt.Printf("%4d  %s\n", u.ID, u.Username)
	}
}

func listRoles(ctx context.Context, repo ports.RoleRepository) {
	roles, err := repo.List(ctx)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if len(roles) == 0 {
		fmt.Println("no roles")
		return
	}
	for _, r := range roles {
		fmt.Printf("%4d  %s\n", r.ID, r.Name)
	}
}

func addUser(ctx context.Context, repo ports.UserRepository, name string) {
	if name == "" {
		fmt.Println("usage: add <name>")
		return
	}
	user, err := repo.Create(ctx, &domain.User{Username: name})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("created user %d %s\n", user.ID, user.Username)
}

func findUser(ctx context.Context, repo ports.UserRepository, name string) {
	if name == "" {
		fmt.Println("usage: find <name>")
		return
	}
	user, err := repo.FindByUsername(ctx, name)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%4d  %s\n", user.ID, user.Username)
}
