package matching

// Candidate - сотрудник с набором имен его одобренных навыков
type Candidate struct {
	EmployeeID     string
	ApprovedSkills []string
}

// EligibleEmployees возвращает подмножество пула, у которого набор
// одобренных навыков покрывает все требуемые. Порядок пула
// сохраняется (стабильный фильтр). Пустой список требований не
// фильтрует вовсе.
func EligibleEmployees(required []string, pool []Candidate) []Candidate {
	if len(required) == 0 {
		return pool
	}

	eligible := make([]Candidate, 0, len(pool))
	for _, candidate := range pool {
		if hasAllSkills(candidate.ApprovedSkills, required) {
			eligible = append(eligible, candidate)
		}
	}
	return eligible
}

func hasAllSkills(approved []string, required []string) bool {
	skillSet := make(map[string]bool, len(approved))
	for _, name := range approved {
		skillSet[name] = true
	}

	for _, name := range required {
		if !skillSet[name] {
			return false
		}
	}
	return true
}
