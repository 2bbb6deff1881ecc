package schedule

// MostMinutesAsleep picks the guard with the largest total sleep time and
// then that guard's most frequently slept minute.
// Ties go to the smallest guard ID, then to the earliest minute.
func MostMinutesAsleep(r Record) (Answer, error) {
	if len(r) == 0 {
		return Answer{}, ErrNoGuards
	}

	var (
		best  uint32
		total = -1
	)
	for _, id := range r.Guards() {
		if t := r.MinutesAsleep(id); t > total {
			best, total = id, t
		}
	}
	if total == 0 {
		return Answer{}, ErrNoSleep
	}
	minute, count := r.Histogram(best).Max()

	return Answer{Guard: best, Minute: minute, Count: count}, nil
}

// MostFrequentMinute picks, over all guards, the guard/minute pair that was
// slept through most often.
// Ties go to the smallest guard ID, then to the earliest minute.
func MostFrequentMinute(r Record) (Answer, error) {
	if len(r) == 0 {
		return Answer{}, ErrNoGuards
	}

	best := Answer{Count: -1}
	for _, id := range r.Guards() {
		minute, count := r.Histogram(id).Max()
		if count > best.Count {
			best = Answer{Guard: id, Minute: minute, Count: count}
		}
	}
	if best.Count == 0 {
		return Answer{}, ErrNoSleep
	}

	return best, nil
}
