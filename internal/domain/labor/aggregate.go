package labor

import (
	"sort"
	"time"

	"carrozzeria/internal/domain/entities"
)

type EmployeeTotals struct {
	EmployeeID            string
	FirstName             string
	LastName              string
	HourlyRate            float64
	TotalMinutes          int
	TotalHours            float64
	TotalCost             float64
	SessionCount          int
	ActiveSessions        int
	CompletedSessions     int
	AverageSessionMinutes float64
}

type OrderTotals struct {
	OrderID           string
	TotalMinutes      int
	TotalHours        float64
	TotalCost         float64
	SessionCount      int
	ActiveSessions    int
	CompletedSessions int
	EmployeeCount     int
}

type Summary struct {
	EmployeeCount         int
	TotalMinutes          int
	TotalHours            float64
	TotalCost             float64
	TotalSessions         int
	ActiveSessions        int
	CompletedSessions     int
	AverageSessionMinutes float64
}

// GroupByEmployee rolls sessions up per employee, sorted by total hours
// descending. Sessions of unknown employees are kept with a zero rate.
func GroupByEmployee(sessions []entities.WorkSession, employees map[string]entities.Employee, now time.Time) []EmployeeTotals {
	byID := make(map[string]*EmployeeTotals)
	order := make([]string, 0)
	for _, s := range sessions {
		t, ok := byID[s.EmployeeID]
		if !ok {
			emp := employees[s.EmployeeID]
			t = &EmployeeTotals{
				EmployeeID: s.EmployeeID,
				FirstName:  emp.FirstName,
				LastName:   emp.LastName,
				HourlyRate: emp.HourlyRate,
			}
			byID[s.EmployeeID] = t
			order = append(order, s.EmployeeID)
		}
		t.TotalMinutes += LiveMinutes(s, now)
		t.SessionCount++
		if s.IsOpen() {
			t.ActiveSessions++
		} else {
			t.CompletedSessions++
		}
	}

	out := make([]EmployeeTotals, 0, len(order))
	for _, id := range order {
		t := byID[id]
		t.TotalHours = Hours(t.TotalMinutes)
		t.TotalCost = t.TotalHours * t.HourlyRate
		if t.SessionCount > 0 {
			t.AverageSessionMinutes = float64(t.TotalMinutes) / float64(t.SessionCount)
		}
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalHours != out[j].TotalHours {
			return out[i].TotalHours > out[j].TotalHours
		}
		if out[i].LastName != out[j].LastName {
			return out[i].LastName < out[j].LastName
		}
		return out[i].EmployeeID < out[j].EmployeeID
	})
	return out
}

// GroupByOrder rolls sessions up per work order. Cost is summed per session
// since several employees with different rates may work the same order.
func GroupByOrder(sessions []entities.WorkSession, employees map[string]entities.Employee, now time.Time) []OrderTotals {
	byID := make(map[string]*OrderTotals)
	workers := make(map[string]map[string]struct{})
	order := make([]string, 0)
	for _, s := range sessions {
		t, ok := byID[s.OrderID]
		if !ok {
			t = &OrderTotals{OrderID: s.OrderID}
			byID[s.OrderID] = t
			workers[s.OrderID] = make(map[string]struct{})
			order = append(order, s.OrderID)
		}
		minutes := LiveMinutes(s, now)
		t.TotalMinutes += minutes
		t.TotalCost += Cost(minutes, employees[s.EmployeeID].HourlyRate)
		t.SessionCount++
		if s.IsOpen() {
			t.ActiveSessions++
		} else {
			t.CompletedSessions++
		}
		workers[s.OrderID][s.EmployeeID] = struct{}{}
	}

	out := make([]OrderTotals, 0, len(order))
	for _, id := range order {
		t := byID[id]
		t.TotalHours = Hours(t.TotalMinutes)
		t.EmployeeCount = len(workers[id])
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalHours != out[j].TotalHours {
			return out[i].TotalHours > out[j].TotalHours
		}
		return out[i].OrderID < out[j].OrderID
	})
	return out
}

func SummarizeEmployees(totals []EmployeeTotals) Summary {
	var s Summary
	s.EmployeeCount = len(totals)
	for _, t := range totals {
		s.TotalMinutes += t.TotalMinutes
		s.TotalCost += t.TotalCost
		s.TotalSessions += t.SessionCount
		s.ActiveSessions += t.ActiveSessions
		s.CompletedSessions += t.CompletedSessions
	}
	s.TotalHours = Hours(s.TotalMinutes)
	if s.TotalSessions > 0 {
		s.AverageSessionMinutes = float64(s.TotalMinutes) / float64(s.TotalSessions)
	}
	return s
}

// EmployeeIndex keys employees by id.
func EmployeeIndex(employees []entities.Employee) map[string]entities.Employee {
	out := make(map[string]entities.Employee, len(employees))
	for _, e := range employees {
		out[e.ID] = e
	}
	return out
}
