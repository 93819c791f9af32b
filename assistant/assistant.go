// Package assistant answers visitor questions with canned replies picked
// by keyword.
package assistant

import "strings"

type rule struct {
	keywords []string
	reply    string
}

const (
	greeting = "Hi there! How can I help you with your property search today?"
	fallback = "I'm not sure how to respond to that. Can you ask about our properties, locations, or services?"
)

// First match wins, so more general topics come after greetings.
var rules = []rule{
	{
		keywords: []string{"hi", "hello", "hey"},
		reply:    "Hello! How can I assist with your property search today?",
	},
	{
		keywords: []string{"property", "properties", "home", "house"},
		reply:    "We have a great selection of properties in Hubli. You can use the filters above to narrow down your search!",
	},
	{
		keywords: []string{"price", "cost", "expensive", "cheap", "budget"},
		reply:    "Our properties range from affordable options to luxury estates. You can filter by price using our search panel.",
	},
	{
		keywords: []string{"location", "area", "where"},
		reply:    "We have properties in several prime locations in Hubli including Vidyanagar, Keshwapur, Navanagar, Unkal and Gokul Road.",
	},
	{
		keywords: []string{"contact", "agent", "help", "assistance", "call"},
		reply:    "You can reach our agents at contact@estateology.com or call us at +91 9876543210. We're happy to help!",
	},
	{
		keywords: []string{"commercial", "office", "shop", "business"},
		reply:    "We offer commercial properties suitable for offices, shops, and other business needs. Check our Commercial filter to see options.",
	},
	{
		keywords: []string{"land", "plot", "acre"},
		reply:    "We have various land plots available for development or investment. Use the Land filter to see current options.",
	},
	{
		keywords: []string{"luxury", "premium", "villa", "penthouse"},
		reply:    "Our luxury properties offer premium amenities and exclusive locations. Browse our Luxury collection for high-end options.",
	},
	{
		keywords: []string{"thank", "thanks"},
		reply:    "You're welcome! Don't hesitate to reach out if you need any more assistance.",
	},
}

func Greeting() string {
	return greeting
}

// Reply matches keywords as plain substrings of the lower-cased message,
// so "this" matches "hi".
func Reply(message string) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(msg, k) {
				return r.reply
			}
		}
	}
	return fallback
}
