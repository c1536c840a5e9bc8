package pipeline

import "github.com/jkhomeclaw/tripview/internal/model"

// SortStops returns the day's stops ordered by time string. The day itself
// is not modified.
func SortStops(day model.Day) []model.Stop {
	stops := make([]model.Stop, len(day.Stops))
	copy(stops, day.Stops)
	model.SortStopsByTime(stops)
	return stops
}

// DayByNumber finds the day with the given dayNumber.
func DayByNumber(trip model.Trip, n int) (model.Day, bool) {
	for _, d := range trip.Days {
		if d.DayNumber == n {
			return d, true
		}
	}
	return model.Day{}, false
}

// DayIndex returns the position of dayNumber n in trip.Days, or -1.
func DayIndex(trip model.Trip, n int) int {
	for i, d := range trip.Days {
		if d.DayNumber == n {
			return i
		}
	}
	return -1
}

// FilterStopsByTag returns every stop carrying tag, in trip order.
func FilterStopsByTag(trip model.Trip, tag string) []model.TaggedStop {
	var out []model.TaggedStop
	for _, d := range trip.Days {
		for _, s := range d.Stops {
			if s.HasTag(tag) {
				out = append(out, model.TaggedStop{DayNumber: d.DayNumber, Stop: s})
			}
		}
	}
	return out
}

// TagCount pairs a tag with how many stops carry it.
type TagCount struct {
	Tag   string
	Count int
}

// Tags lists every distinct tag in first-seen order with usage counts.
func Tags(trip model.Trip) []TagCount {
	idx := make(map[string]int)
	var out []TagCount
	for _, d := range trip.Days {
		for _, s := range d.Stops {
			for _, t := range s.Tags {
				if i, ok := idx[t]; ok {
					out[i].Count++
					continue
				}
				idx[t] = len(out)
				out = append(out, TagCount{Tag: t, Count: 1})
			}
		}
	}
	return out
}
