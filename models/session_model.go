package models

const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AssistantSession is one scheduled lesson slot as the assistant sees it,
// with every student booked into it.
type AssistantSession struct {
	ID       int              `json:"id"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Students []SessionStudent `json:"students"`
}

type SessionStudent struct {
	StudentID  int    `json:"student_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Photo      string `json:"photo,omitempty"`
	Attendance string `json:"attendance"`
}

// AttendanceEntry is a row of the per-slot attendance query
// (GET /assistant/sessions/:date/:time).
type AttendanceEntry struct {
	StudentID        int    `json:"student_id"`
	StudentName      string `json:"student_name"`
	StudentPhone     string `json:"student_phone"`
	StudentPhoto     string `json:"student_photo,omitempty"`
	AttendanceStatus string `json:"attendance_status"`
}

// StudentSession is one lesson as the student sees it. MyRating stays nil
// until the student has rated the session; the upstream enforces the
// one-rating rule, the dashboard only hides the action.
type StudentSession struct {
	ID             int     `json:"id"`
	DateTime       string  `json:"datetime"`
	AssistantName  string  `json:"assistant_name"`
	AssistantPhoto string  `json:"assistant_photo,omitempty"`
	Attendance     string  `json:"attendance"`
	MyRating       *Rating `json:"my_rating,omitempty"`
}
