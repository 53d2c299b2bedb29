package models

// RoleType defines the user role
type RoleType string

const (
	RoleResident      RoleType = "RESIDENT"
	RoleAdministrator RoleType = "ADMINISTRATOR"
)

// MembershipStatus tracks the approval state of a user's link to a condominium.
type MembershipStatus int16

const (
	MembershipPending  MembershipStatus = 0
	MembershipActive   MembershipStatus = 1
	MembershipRejected MembershipStatus = 2
)

// ReservationStatus tracks the lifecycle of a common-area booking.
// Values 3 and 4 are reserved for compatibility with older exports.
type ReservationStatus int16

const (
	ReservationPending   ReservationStatus = 0
	ReservationApproved  ReservationStatus = 1
	ReservationDeclined  ReservationStatus = 2
	ReservationCancelled ReservationStatus = 5
)

// Blocking reports whether a reservation in this status occupies its time
// slot for conflict checking.
func (s ReservationStatus) Blocking() bool {
	return s == ReservationPending || s == ReservationApproved
}

// String returns the API representation of the membership status.
func (s MembershipStatus) String() string {
	switch s {
	case MembershipActive:
		return "ACTIVE"
	case MembershipRejected:
		return "REJECTED"
	default:
		return "PENDING"
	}
}

// ParseMembershipStatus converts an API status string to its stored value.
func ParseMembershipStatus(s string) (MembershipStatus, bool) {
	switch s {
	case "PENDING":
		return MembershipPending, true
	case "ACTIVE":
		return MembershipActive, true
	case "REJECTED":
		return MembershipRejected, true
	}
	return 0, false
}

// String returns the API representation of the reservation status.
func (s ReservationStatus) String() string {
	switch s {
	case ReservationApproved:
		return "APPROVED"
	case ReservationDeclined:
		return "DECLINED"
	case ReservationCancelled:
		return "CANCELLED"
	default:
		return "PENDING"
	}
}

// ParseReservationStatus converts an API status string to its stored value.
func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch s {
	case "PENDING":
		return ReservationPending, true
	case "APPROVED":
		return ReservationApproved, true
	case "DECLINED":
		return ReservationDeclined, true
	case "CANCELLED":
		return ReservationCancelled, true
	}
	return 0, false
}

// PhotoStatus tracks gallery photo moderation.
type PhotoStatus string

const (
	PhotoPending  PhotoStatus = "pending"
	PhotoApproved PhotoStatus = "approved"
	PhotoRejected PhotoStatus = "rejected"
)
