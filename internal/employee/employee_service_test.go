package employee_test

import (
	"path/filepath"
	"testing"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmployeeTest(t *testing.T) (*store.Store, employee.Service) {
	t.Helper()
	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "employees.json"), filepath.Join(dir, "system.log"))
	st.Data = &store.Document{
		Employees: map[string]*store.Employee{
			"Alice": {
				LeaveBalance: map[string]int{"Annual Leave": 5},
				LeaveHistory: []store.LeaveRequest{},
			},
		},
		Holidays: []string{},
	}
	return st, employee.NewService(st)
}

func TestEmployeeService_Add(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		st, svc := setupEmployeeTest(t)

		reply, err := svc.Add(employee.CreateEmployeeRequest{
			Name:      "Bob",
			Balances:  map[string]int{"Sick Leave": 3, "Annual Leave": 10},
			IsManager: true,
		})

		require.NoError(t, err)
		assert.Equal(t, "Employee Bob added successfully.", reply)

		emp := st.Employee("Bob")
		require.NotNil(t, emp)
		assert.True(t, emp.IsManager)
		assert.Equal(t, 10, emp.LeaveBalance["Annual Leave"])
		assert.NotNil(t, emp.LeaveHistory)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, svc := setupEmployeeTest(t)

		reply, err := svc.Add(employee.CreateEmployeeRequest{
			Name:     "Alice",
			Balances: map[string]int{"Annual Leave": 5},
		})

		require.NoError(t, err)
		assert.Equal(t, "Employee already exists.", reply)
	})

	t.Run("missing name", func(t *testing.T) {
		_, svc := setupEmployeeTest(t)

		_, err := svc.Add(employee.CreateEmployeeRequest{
			Balances: map[string]int{"Annual Leave": 5},
		})

		require.Error(t, err)
		assert.Equal(t, "Name is required", err.Error())
	})

	t.Run("negative balance", func(t *testing.T) {
		_, svc := setupEmployeeTest(t)

		_, err := svc.Add(employee.CreateEmployeeRequest{
			Name:     "Bob",
			Balances: map[string]int{"Annual Leave": -1},
		})

		require.Error(t, err)
		assert.Equal(t, "Leave Balance is invalid", err.Error())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("replaces balances, keeps manager flag when nil", func(t *testing.T) {
		st, svc := setupEmployeeTest(t)

		reply, err := svc.Update("Alice", employee.UpdateEmployeeRequest{
			Balances: map[string]int{"Annual Leave": 8},
		})

		require.NoError(t, err)
		assert.Equal(t, "Employee Alice updated successfully.", reply)

		emp := st.Employee("Alice")
		assert.Equal(t, 8, emp.LeaveBalance["Annual Leave"])
		assert.False(t, emp.IsManager)
	})

	t.Run("flips manager flag, keeps balances when nil", func(t *testing.T) {
		st, svc := setupEmployeeTest(t)
		manager := true

		_, err := svc.Update("Alice", employee.UpdateEmployeeRequest{IsManager: &manager})

		require.NoError(t, err)
		emp := st.Employee("Alice")
		assert.True(t, emp.IsManager)
		assert.Equal(t, 5, emp.LeaveBalance["Annual Leave"])
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, svc := setupEmployeeTest(t)

		_, err := svc.Update("Nobody", employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		st, svc := setupEmployeeTest(t)

		reply, err := svc.Delete("Alice")

		require.NoError(t, err)
		assert.Equal(t, "Employee 'Alice' has been deleted from the system.", reply)
		assert.Nil(t, st.Employee("Alice"))
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, svc := setupEmployeeTest(t)

		_, err := svc.Delete("Nobody")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Queries(t *testing.T) {
	_, svc := setupEmployeeTest(t)
	_, err := svc.Add(employee.CreateEmployeeRequest{
		Name:      "Bob",
		Balances:  map[string]int{"Annual Leave": 1},
		IsManager: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice", "Bob"}, svc.Names())
	assert.True(t, svc.Exists("Alice"))
	assert.False(t, svc.Exists("Nobody"))
	assert.True(t, svc.IsManager("Bob"))
	assert.False(t, svc.IsManager("Alice"))
	assert.False(t, svc.IsManager("Nobody"))

	resp, err := svc.Get("Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob", resp.Name)
	assert.True(t, resp.IsManager)

	_, err = svc.Get("Nobody")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
