package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"studyplan/internal/service"
)

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrTaskNotFound indicates the reference matched no task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousRef indicates an id prefix matched several tasks.
	ErrAmbiguousRef = errors.New("ambiguous task reference")
)

// ResolveTaskRef finds the task named by args[0].
//
// Resolution order:
// 1. An exact task id.
// 2. All digits → 1-based position in the display order printed by `list`.
// 3. A prefix of exactly one task id.
func ResolveTaskRef(svc service.Service, args []string) (service.Task, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return service.Task{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return service.Task{}, fmt.Errorf("unexpected argument: %s", args[1])
	}
	ref := strings.TrimSpace(args[0])

	if task, ok := svc.FindByID(ref); ok {
		return task, nil
	}

	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		sorted := svc.SortedForDisplay()
		if err != nil || num < 1 || num > len(sorted) {
			return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
		}
		return sorted[num-1], nil
	}

	var matches []service.Task
	for _, task := range svc.Tasks() {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 0:
		return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return service.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousRef, ref)
	}
}

// DisplayNumbers maps task ids to their 1-based position in the display order.
func DisplayNumbers(svc service.Service) map[string]int {
	nums := make(map[string]int)
	for i, task := range svc.SortedForDisplay() {
		nums[task.ID] = i + 1
	}
	return nums
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
