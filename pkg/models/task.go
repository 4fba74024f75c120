package models

// TimeFlex is the display slot for tasks that are not pinned to a
// specific clock time.
const TimeFlex = "flex"

// Task is a single prioritized to-do item. Tasks have no identity beyond
// their description text; callers use them once and discard them.
type Task struct {
	Task          string   `json:"task"`
	Time          string   `json:"time"`
	Reason        string   `json:"reason"`
	RelatedDonors []string `json:"related_donors"`
}

// MeetingPlan is the fixed-shape recommendation for an upcoming donor
// meeting.
type MeetingPlan struct {
	MeetingFormat         string   `json:"meeting_format"`
	DiscussionTopics      []string `json:"discussion_topics"`
	GiftIdeas             []string `json:"gift_ideas"`
	PreMeetingPreparation []string `json:"pre_meeting_preparation"`
	FollowUpPlan          string   `json:"follow_up_plan"`
	Event                 string   `json:"event,omitempty"`
	EventSpecificTips     []string `json:"event_specific_tips,omitempty"`
}

// MeetingReflection is the post-meeting follow-up summary.
type MeetingReflection struct {
	MissedOpportunities []string `json:"missed_opportunities"`
	FollowUpActions     []string `json:"follow_up_actions"`
	SuggestedQuestions  []string `json:"suggested_questions"`
	UpdatedTimeline     string   `json:"updated_timeline"`
}
