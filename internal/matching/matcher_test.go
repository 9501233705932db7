package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEligibleEmployees_EmptyRequiredReturnsWholePool(t *testing.T) {
	pool := []Candidate{
		{EmployeeID: "a", ApprovedSkills: []string{"Go"}},
		{EmployeeID: "b", ApprovedSkills: nil},
	}

	result := EligibleEmployees(nil, pool)

	assert.Equal(t, pool, result)
}

func TestEligibleEmployees_RequiresAllSkills(t *testing.T) {
	pool := []Candidate{
		{EmployeeID: "a", ApprovedSkills: []string{"Go", "SQL"}},
		{EmployeeID: "b", ApprovedSkills: []string{"Go"}},
		{EmployeeID: "c", ApprovedSkills: []string{"SQL", "Go", "Docker"}},
	}

	result := EligibleEmployees([]string{"Go", "SQL"}, pool)

	assert.Len(t, result, 2)
	assert.Equal(t, "a", result[0].EmployeeID)
	assert.Equal(t, "c", result[1].EmployeeID)
}

func TestEligibleEmployees_PreservesPoolOrder(t *testing.T) {
	pool := []Candidate{
		{EmployeeID: "z", ApprovedSkills: []string{"Go"}},
		{EmployeeID: "a", ApprovedSkills: []string{"Go"}},
		{EmployeeID: "m", ApprovedSkills: []string{"Go"}},
	}

	result := EligibleEmployees([]string{"Go"}, pool)

	assert.Equal(t, []string{"z", "a", "m"}, []string{
		result[0].EmployeeID, result[1].EmployeeID, result[2].EmployeeID,
	})
}

func TestEligibleEmployees_NoMatches(t *testing.T) {
	pool := []Candidate{
		{EmployeeID: "a", ApprovedSkills: []string{"Go"}},
	}

	result := EligibleEmployees([]string{"Kubernetes"}, pool)

	assert.Empty(t, result)
}

func TestEligibleEmployees_EmptyPool(t *testing.T) {
	result := EligibleEmployees([]string{"Go"}, nil)

	assert.Empty(t, result)
}
