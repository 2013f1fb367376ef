package models

// Post is a feed entry shown on the home page.
type Post struct {
	ID       int      `yaml:"id"`
	Author   string   `yaml:"author"`
	Headline string   `yaml:"headline"`
	Content  string   `yaml:"content"`
	Likes    int      `yaml:"likes"`
	Comments int      `yaml:"comments"`
	Posted   string   `yaml:"posted"`
	Tags     []string `yaml:"tags"`
}

// HasAnyTag reports whether the post is tagged with one of categories.
func (p Post) HasAnyTag(categories []string) bool {
	for _, c := range categories {
		for _, t := range p.Tags {
			if t == c {
				return true
			}
		}
	}
	return false
}

// Person is a lightweight member card (recommendations, connections).
type Person struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Mutual   int    `yaml:"mutual"`
}

// Community is a group suggestion on the home page.
type Community struct {
	Name    string `yaml:"name"`
	Members string `yaml:"members"`
}

// Job is a job listing.
type Job struct {
	ID       int      `yaml:"id"`
	Title    string   `yaml:"title"`
	Company  string   `yaml:"company"`
	Location string   `yaml:"location"`
	Salary   string   `yaml:"salary"`
	Type     string   `yaml:"type"`
	Posted   string   `yaml:"posted"`
	Skills   []string `yaml:"skills"`
}

// Conversation is a messaging thread header.
type Conversation struct {
	ID          int       `yaml:"id"`
	Name        string    `yaml:"name"`
	LastMessage string    `yaml:"last_message"`
	Time        string    `yaml:"time"`
	Unread      int       `yaml:"unread"`
	Messages    []Message `yaml:"messages"`
}

// Message is a single message inside a conversation.
type Message struct {
	ID     int    `yaml:"id"`
	Sender string `yaml:"sender"`
	Text   string `yaml:"text"`
	Time   string `yaml:"time"`
	Mine   bool   `yaml:"mine"`
}

// Notification is an activity notice, rendered as "<Actor> <Action>".
type Notification struct {
	ID     int    `yaml:"id"`
	Kind   string `yaml:"kind"`
	Actor  string `yaml:"actor"`
	Action string `yaml:"action"`
	Time   string `yaml:"time"`
	Unread bool   `yaml:"unread"`
}

// FeedCategory is a selectable topic of the home feed.
type FeedCategory struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// SalaryInsight is one row of the salary insights table. Amounts are yearly
// USD.
type SalaryInsight struct {
	Role     string `yaml:"role"`
	Location string `yaml:"location"`
	Min      int    `yaml:"min"`
	Max      int    `yaml:"max"`
	Avg      int    `yaml:"avg"`
	Trend    string `yaml:"trend"`
}
