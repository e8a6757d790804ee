package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go-leave/internal/assistant"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/store"

	"go.uber.org/zap"
)

// Console is the interactive front door: it authenticates by name and
// hands control to the admin or employee shell. All the real decisions
// happen behind the services; this package is prompt/response plumbing.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	store     *store.Store
	employees employee.Service
	holidays  holiday.Service
	leaves    leave.Service
	assistant assistant.Service
	logger    *zap.Logger
}

func New(
	in io.Reader,
	out io.Writer,
	st *store.Store,
	employees employee.Service,
	holidays holiday.Service,
	leaves leave.Service,
	asst assistant.Service,
	logger ...*zap.Logger,
) *Console {
	l := zap.L().Named("console")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("console")
	}
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		store:     st,
		employees: employees,
		holidays:  holidays,
		leaves:    leaves,
		assistant: asst,
		logger:    l,
	}
}

func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to the Leave Management System!")

	for {
		userType, ok := c.prompt("Are you an 'admin' or 'user'? (type 'quit' to exit): ")
		if !ok {
			return nil
		}
		userType = strings.ToLower(userType)

		if userType == "quit" || userType == "exit" {
			c.println("Exiting the system. Goodbye!")
			return nil
		}
		if userType != "admin" && userType != "user" {
			c.println("Invalid choice. Please type 'admin', 'user', or 'quit'.")
			continue
		}

		name, ok := c.prompt("Enter your name: ")
		if !ok {
			return nil
		}

		switch userType {
		case "admin":
			if !c.store.IsAdmin(name) {
				c.println("Admin not found. Try again.")
				continue
			}
			if err := c.runAdmin(); err != nil {
				return err
			}
		case "user":
			if !c.employees.Exists(name) {
				c.println("User not found. Try again.")
				continue
			}
			if err := c.runEmployee(ctx, name); err != nil {
				return err
			}
		}
	}
}

// prompt writes the label and reads one trimmed line; ok=false on EOF.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
