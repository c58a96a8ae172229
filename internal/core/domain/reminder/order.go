package reminder

type OrderBy struct {
	v string
}

var (
	OrderByIDAsc     = OrderBy{}
	OrderByDueAtAsc  = OrderBy{v: "due_at_asc"}
	OrderByDueAtDesc = OrderBy{v: "due_at_desc"}
)
