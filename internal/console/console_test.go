package console_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-leave/internal/assistant"
	"go-leave/internal/console"
	"go-leave/internal/employee"
	"go-leave/internal/extract"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/nlp"
	"go-leave/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, time.March, 2, 10, 30, 0, 0, time.UTC)

// runScript feeds the console a scripted session and returns everything
// it printed. The script must end in a way that exits the top loop.
func runScript(t *testing.T, script string) (string, *store.Store) {
	t.Helper()
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "employees.json"), filepath.Join(dir, "system.log"))
	st.Data = &store.Document{
		Employees: map[string]*store.Employee{
			"Alice": {
				LeaveBalance: map[string]int{leave.TypeAnnual: 5, leave.TypeSick: 2},
				LeaveHistory: []store.LeaveRequest{},
			},
		},
		Holidays: []string{},
	}

	clock := func() time.Time { return anchor }
	holidaySvc := holiday.NewService(st)
	employeeSvc := employee.NewService(st)
	leaveSvc := leave.NewServiceWithClock(st, holidaySvc, clock)
	extractor := extract.NewRuleExtractor(nlp.NewClassifier(nlp.NewDateResolver(clock)))
	asst := assistant.NewService(extractor, employeeSvc, leaveSvc)

	var out bytes.Buffer
	c := console.New(strings.NewReader(script), &out, st, employeeSvc, holidaySvc, leaveSvc, asst)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), st
}

func TestConsole_QuitImmediately(t *testing.T) {
	out, _ := runScript(t, "quit\n")
	assert.Contains(t, out, "Welcome to the Leave Management System!")
	assert.Contains(t, out, "Exiting the system. Goodbye!")
}

func TestConsole_InvalidChoiceThenQuit(t *testing.T) {
	out, _ := runScript(t, "manager\nquit\n")
	assert.Contains(t, out, "Invalid choice. Please type 'admin', 'user', or 'quit'.")
}

func TestConsole_UnknownUserRejected(t *testing.T) {
	out, _ := runScript(t, "user\nGhost\nquit\n")
	assert.Contains(t, out, "User not found. Try again.")
}

func TestConsole_UnknownAdminRejected(t *testing.T) {
	out, _ := runScript(t, "admin\nAlice\nquit\n")
	assert.Contains(t, out, "Admin not found. Try again.")
}

func TestConsole_EmployeeSession(t *testing.T) {
	script := strings.Join([]string{
		"user",
		"Alice",
		"how many annual days do I have left",
		"I need 2 days annual leave tomorrow",
		"quit",
		"quit",
	}, "\n") + "\n"

	out, st := runScript(t, script)

	assert.Contains(t, out, "Hello Alice! You are now logged in.")
	assert.Contains(t, out, "You have 5 Annual Leave remaining.")
	assert.Contains(t, out, "2 Annual Leave leave(s) requested from 2026-03-03. Pending manager approval.")
	assert.Contains(t, out, "Logging out...")
	assert.Equal(t, 3, st.Employee("Alice").LeaveBalance[leave.TypeAnnual])
}

func TestConsole_AdminAddHoliday(t *testing.T) {
	script := strings.Join([]string{
		"admin",
		"AdminUser",
		"4",
		"not-a-date",
		"2099-12-25",
		"yes",
		"6",
		"quit",
	}, "\n") + "\n"

	out, st := runScript(t, script)

	assert.Contains(t, out, "Admin Commands:")
	assert.Contains(t, out, "Invalid date format. Please enter date in YYYY-MM-DD format.")
	assert.Contains(t, out, "Holiday 2099-12-25 added.")
	assert.Contains(t, out, "Exiting admin mode...")
	assert.Equal(t, []string{"2099-12-25"}, st.Data.Holidays)
}

func TestConsole_AdminAddAndDeleteEmployee(t *testing.T) {
	// Menu 1 adds Bob (balances sick/annual/maternity, then manager flag),
	// menu 3 deletes Alice by name.
	script := strings.Join([]string{
		"admin",
		"AdminUser",
		"1",
		"Bob",
		"1",
		"10",
		"0",
		"yes",
		"3",
		"Alice",
		"yes",
		"6",
		"quit",
	}, "\n") + "\n"

	out, st := runScript(t, script)

	assert.Contains(t, out, "Employee Bob added successfully.")
	assert.Contains(t, out, "Employee 'Alice' has been deleted from the system.")
	require.NotNil(t, st.Employee("Bob"))
	assert.True(t, st.Employee("Bob").IsManager)
	assert.Nil(t, st.Employee("Alice"))
}

func TestConsole_AdminReviewRequests(t *testing.T) {
	script := strings.Join([]string{
		"user",
		"Alice",
		"I need 2 days annual leave tomorrow",
		"I need 1 days sick leave on 2026-03-05",
		"quit",
		"admin",
		"AdminUser",
		"5",
		"1",
		"a",
		"d",
		"6",
		"quit",
	}, "\n") + "\n"

	out, st := runScript(t, script)

	assert.Contains(t, out, "Request approved.")
	assert.Contains(t, out, "Request denied and leave balance refunded.")

	emp := st.Employee("Alice")
	assert.Equal(t, leave.StatusApproved, emp.LeaveHistory[0].Status)
	assert.Equal(t, leave.StatusDenied, emp.LeaveHistory[1].Status)
	assert.Equal(t, 3, emp.LeaveBalance[leave.TypeAnnual])
	assert.Equal(t, 2, emp.LeaveBalance[leave.TypeSick])
}
