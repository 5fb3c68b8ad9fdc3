package racetime

import "fmt"

// GapsToLeader computes the deficit of each entry to the leader from a slice
// of total-time strings sorted leader-first, as shown in a results column:
// "0.0" for the leader, "+12.3" style for everyone behind.
//
// Returns an error if any entry fails to parse or is faster than the leader.
func GapsToLeader(times []string) ([]string, error) {
	if len(times) == 0 {
		return nil, nil
	}

	leader, err := Parse(times[0])
	if err != nil {
		return nil, fmt.Errorf("leader time: %w", err)
	}

	gaps := make([]string, len(times))
	gaps[0] = "0.0"

	for i, t := range times[1:] {
		total, err := Parse(t)
		if err != nil {
			return nil, fmt.Errorf("time at rank %d: %w", i+2, err)
		}
		if total < leader {
			return nil, fmt.Errorf("time at rank %d is faster than the leader", i+2)
		}
		gaps[i+1] = "+" + Format(total-leader)
	}

	return gaps, nil
}
