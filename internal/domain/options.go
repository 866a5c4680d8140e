package domain

// StatusOption is one entry of the status picker. An option either carries a
// Status directly or groups sub-options that do.
type StatusOption struct {
	ID         string
	Label      string
	Status     Status
	SubOptions []StatusOption
}

// HasSubOptions reports whether choosing the option opens a second level.
func (o StatusOption) HasSubOptions() bool {
	return len(o.SubOptions) > 0
}

// StatusOptions is the picker tree: "Out of unit" groups the two duty
// statuses, annual leave is chosen directly.
func StatusOptions() []StatusOption {
	return []StatusOption{
		{
			ID:    "out_of_unit",
			Label: "Out of unit",
			SubOptions: []StatusOption{
				{ID: string(StatusAwayFromUnit), Label: StatusAwayFromUnit.Label(), Status: StatusAwayFromUnit},
				{ID: string(StatusAfterShift), Label: StatusAfterShift.Label(), Status: StatusAfterShift},
			},
		},
		{ID: string(StatusAnnualLeave), Label: StatusAnnualLeave.Label(), Status: StatusAnnualLeave},
	}
}

// FindStatusOption looks up a top-level option by id.
func FindStatusOption(id string) (StatusOption, bool) {
	for _, o := range StatusOptions() {
		if o.ID == id {
			return o, true
		}
	}
	return StatusOption{}, false
}
