package console

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"go-leave/internal/employee"
	"go-leave/internal/leave"
	"go-leave/internal/shared/apperror"

	"go.uber.org/zap"
)

func (c *Console) showAdminCommands() {
	c.println("\nAdmin Commands:")
	c.println("1. Add Employee")
	c.println("2. Edit Employee")
	c.println("3. Delete Employee")
	c.println("4. Add Holiday")
	c.println("5. Approve Leave Requests")
	c.println("6. Quit Admin Mode")
	c.println()
}

// runAdmin is the menu-driven administrative shell. Every completed action
// re-displays the menu.
func (c *Console) runAdmin() error {
	c.showAdminCommands()

	for {
		choice, ok := c.prompt("Enter command number: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = c.adminAddEmployee()
		case "2":
			err = c.adminEditEmployee()
		case "3":
			err = c.adminDeleteEmployee()
		case "4":
			err = c.adminAddHoliday()
		case "5":
			err = c.adminReviewRequests()
		case "6":
			c.println("Exiting admin mode...")
			return nil
		default:
			c.println("Invalid command. Please try again.")
		}
		if err != nil {
			return err
		}

		c.showAdminCommands()
	}
}

func (c *Console) adminAddEmployee() error {
	name, ok := c.prompt("Enter new employee name: ")
	if !ok {
		return nil
	}
	balances, ok := c.askLeaveBalances(nil)
	if !ok {
		return nil
	}
	isManagerInput, ok := c.prompt("Is this employee a manager? (yes/no): ")
	if !ok {
		return nil
	}

	reply, err := c.employees.Add(employee.CreateEmployeeRequest{
		Name:      name,
		Balances:  balances,
		IsManager: strings.EqualFold(isManagerInput, "yes"),
	})
	if err != nil {
		if isFatal(err) {
			return err
		}
		c.println(err.Error())
		return nil
	}
	c.println(reply)
	return nil
}

func (c *Console) adminEditEmployee() error {
	names := c.employees.Names()
	if len(names) == 0 {
		c.println("No employees found.")
		return nil
	}

	selected, ok := c.selectEmployee(names, "Select employee number to edit or 'quit': ")
	if !ok || selected == "" {
		return nil
	}

	current, err := c.employees.Get(selected)
	if err != nil {
		if isFatal(err) {
			return err
		}
		c.println(err.Error())
		return nil
	}
	c.println("Leave balances edit:")
	balances, ok := c.askLeaveBalances(current.Balances)
	if !ok {
		return nil
	}

	managerInput, ok := c.prompt("Change manager status? (yes/no/skip): ")
	if !ok {
		return nil
	}
	var isManager *bool
	switch strings.ToLower(managerInput) {
	case "yes":
		v := true
		isManager = &v
	case "no":
		v := false
		isManager = &v
	}

	reply, err := c.employees.Update(selected, employee.UpdateEmployeeRequest{
		Balances:  balances,
		IsManager: isManager,
	})
	if err != nil {
		if isFatal(err) {
			return err
		}
		c.println(err.Error())
		return nil
	}
	c.println(reply)
	return nil
}

func (c *Console) adminDeleteEmployee() error {
	names := c.employees.Names()
	if len(names) == 0 {
		c.println("No employees found to delete.")
		return nil
	}

	c.println("\nEmployees:")
	for i, name := range names {
		c.printf("%d. %s\n", i+1, name)
	}
	c.println("Type 'quit' to cancel.")

	for {
		selection, ok := c.prompt("Select employee number or type employee name to delete or 'quit': ")
		if !ok {
			return nil
		}
		if strings.EqualFold(selection, "quit") {
			return nil
		}

		var selected string
		if idx, err := strconv.Atoi(selection); err == nil {
			if idx < 1 || idx > len(names) {
				c.println("Invalid number. Please enter a valid number from the list.")
				continue
			}
			selected = names[idx-1]
		} else {
			if !c.employees.Exists(selection) {
				c.println("Employee name not found. Please enter a valid name or number.")
				continue
			}
			selected = selection
		}

		confirm, ok := c.prompt("Are you sure you want to DELETE employee '" + selected + "' and all their records? (yes/no): ")
		if !ok {
			return nil
		}
		if strings.EqualFold(confirm, "yes") {
			reply, err := c.employees.Delete(selected)
			if err != nil {
				if isFatal(err) {
					return err
				}
				c.println(err.Error())
				return nil
			}
			c.println(reply)
		} else {
			c.println("Deletion cancelled.")
		}
		return nil
	}
}

func (c *Console) adminAddHoliday() error {
	var date string
	for {
		input, ok := c.prompt("Enter holiday date (YYYY-MM-DD): ")
		if !ok {
			return nil
		}
		if _, err := time.Parse("2006-01-02", input); err != nil {
			c.println("Invalid date format. Please enter date in YYYY-MM-DD format.")
			continue
		}
		date = input
		break
	}

	confirm, ok := c.prompt("Are you sure you want to add " + date + " as a holiday? (yes/no): ")
	if !ok {
		return nil
	}
	if !strings.EqualFold(confirm, "yes") {
		c.println("Holiday addition cancelled.")
		return nil
	}

	reply, err := c.holidays.Add(date)
	if err != nil {
		return err
	}
	c.println(reply)
	return nil
}

func (c *Console) adminReviewRequests() error {
	names := c.leaves.EmployeesWithPending()
	if len(names) == 0 {
		c.println("No pending leave requests from any employee.")
		return nil
	}

	c.println("\nEmployees with pending leave requests:")
	target, ok := c.selectEmployee(names, "Select employee number to review leave requests or 'quit': ")
	if !ok || target == "" {
		return nil
	}

	pending, err := c.leaves.PendingRequests(target)
	if err != nil {
		if isFatal(err) {
			return err
		}
		c.println(err.Error())
		return nil
	}

	for i, req := range pending {
		c.printf("\nRequest %d: %d days of %s leave starting %s.\n", i+1, req.Days, req.Type, req.StartDate)
		for {
			decision, ok := c.prompt("Approve or Deny? (a/d): ")
			if !ok {
				return nil
			}
			decision = strings.ToLower(decision)
			if decision != "a" && decision != "d" {
				c.println("Invalid input. Please enter 'a' to approve or 'd' to deny.")
				continue
			}

			reply, err := c.leaves.Decide(target, req.ID, decision == "a")
			if err != nil {
				if isFatal(err) {
					return err
				}
				c.logger.Warn("decide request rejected", zap.String("target", target), zap.Error(err))
				c.println(err.Error())
				break
			}
			c.println(reply)
			break
		}
	}
	return nil
}

// selectEmployee lists names numbered and reads a selection; empty result
// with ok=true means the admin typed quit.
func (c *Console) selectEmployee(names []string, label string) (string, bool) {
	for i, name := range names {
		c.printf("%d. %s\n", i+1, name)
	}
	c.println("Type 'quit' to exit editing.")

	for {
		selection, ok := c.prompt(label)
		if !ok {
			return "", false
		}
		if strings.EqualFold(selection, "quit") {
			return "", true
		}
		idx, err := strconv.Atoi(selection)
		if err != nil || idx < 1 || idx > len(names) {
			c.println("Invalid input. Please enter a valid number or 'quit'.")
			continue
		}
		return names[idx-1], true
	}
}

// askLeaveBalances collects a balance per leave type. With existing
// balances, empty input keeps the current value.
func (c *Console) askLeaveBalances(existing map[string]int) (map[string]int, bool) {
	balances := map[string]int{}
	c.println("Enter leave balances for each leave type (leave empty to keep current balance):")
	for _, lt := range leave.Types() {
		for {
			label := "  " + lt + ": "
			if existing != nil {
				label = "  " + lt + " (current: " + strconv.Itoa(existing[lt]) + "): "
			}
			val, ok := c.prompt(label)
			if !ok {
				return nil, false
			}

			if val == "" && existing != nil {
				balances[lt] = existing[lt]
				break
			}
			if val == "" {
				c.println("This field cannot be empty. Please enter a number (0 if none).")
				continue
			}
			num, err := strconv.Atoi(val)
			if err != nil {
				c.println("Invalid number. Please enter a valid integer.")
				continue
			}
			if num < 0 {
				c.println("Please enter a non-negative number.")
				continue
			}
			balances[lt] = num
			break
		}
	}
	return balances, true
}

// isFatal reports whether an error must abort the console instead of
// being shown as a reply. Coded business errors are user-facing; anything
// else is a persistence failure.
func isFatal(err error) bool {
	var appErr *apperror.AppError
	return !errors.As(err, &appErr)
}
