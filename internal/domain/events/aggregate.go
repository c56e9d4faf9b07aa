package events

// buildItem derives the read-side aggregates for one event from its RSVP
// rows: per-status counts, per-status member lists, and the requesting
// user's own vote (nil when absent).
func buildItem(record Record, rsvps []RSVP, userID string) Item {
	item := Item{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		StartsAt:    record.StartsAt,
		Location:    record.Location,
		Category:    record.Category,
		MicroEvent:  record.MicroEvent,
		CreatedBy:   record.CreatedBy,
		RSVPMembers: Members{
			Yes:   make([]string, 0),
			Maybe: make([]string, 0),
			No:    make([]string, 0),
		},
	}

	for _, rsvp := range rsvps {
		if rsvp.EventID != record.ID {
			continue
		}
		switch rsvp.Status {
		case StatusYes:
			item.RSVPCounts.Yes++
			item.RSVPMembers.Yes = append(item.RSVPMembers.Yes, rsvp.UserID)
		case StatusMaybe:
			item.RSVPCounts.Maybe++
			item.RSVPMembers.Maybe = append(item.RSVPMembers.Maybe, rsvp.UserID)
		case StatusNo:
			item.RSVPCounts.No++
			item.RSVPMembers.No = append(item.RSVPMembers.No, rsvp.UserID)
		default:
			continue
		}
		if userID != "" && rsvp.UserID == userID {
			status := rsvp.Status
			item.UserRSVP = &status
		}
	}

	return item
}

// buildItems maps every record to an Item, grouping the flat RSVP slice by
// event so each event is annotated in a single pass over its own votes.
func buildItems(records []Record, rsvps []RSVP, userID string) []Item {
	byEvent := make(map[string][]RSVP, len(records))
	for _, rsvp := range rsvps {
		byEvent[rsvp.EventID] = append(byEvent[rsvp.EventID], rsvp)
	}

	items := make([]Item, 0, len(records))
	for _, record := range records {
		items = append(items, buildItem(record, byEvent[record.ID], userID))
	}
	return items
}
