// Package resource holds authored static content shown alongside a conversation.
package resource

import "fmt"

// Helpline is an emergency contact surfaced to every user.
type Helpline struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Note   string `json:"note,omitempty"`
}

// Bundle groups the static content a renderer needs.
type Bundle struct {
	Welcome      string     `json:"welcome"`
	Helplines    []Helpline `json:"helplines"`
	Disclaimer   string     `json:"disclaimer"`
	Footer       string     `json:"footer"`
	QuickReplies []string   `json:"quickReplies"`
}

const (
	genericPlaceholder = "Share your situation, ask about laws, or just talk... I'm here to listen and help 💙"
	namedPlaceholder   = "%s, share what's on your mind... I'm here to help 💙"
)

// Placeholder returns the input hint, personalised when the name is known.
func Placeholder(name string) string {
	if name == "" {
		return genericPlaceholder
	}
	return fmt.Sprintf(namedPlaceholder, name)
}

// Seed provides the content the helper ships with.
func Seed() Bundle {
	return Bundle{
		Welcome: "Hello! I'm your Domestic Violence Helper. I'm here to provide confidential, personalized support for anyone experiencing domestic violence.\n\n" +
			"To help you better, may I know:\n" +
			"1. How would you like me to address you? (Name or just 'Friend')\n" +
			"2. Which state/city are you from?\n" +
			"3. Are you seeking help for yourself or someone else?\n\n" +
			"You can share as much or as little as you're comfortable with. Everything here is completely confidential. 💙",
		Helplines: []Helpline{
			{Name: "Domestic Violence Helpline", Number: "1091", Note: "24/7 Free"},
			{Name: "National Commission for Women", Number: "7827170170"},
			{Name: "Men's Helpline (SIFF)", Number: "+91-9990-888-888"},
			{Name: "Police Emergency", Number: "100"},
			{Name: "One Stop Centre", Number: "181"},
		},
		Disclaimer: "This chatbot provides information about Indian domestic violence laws and resources for all genders. " +
			"It does not replace legal advice, medical consultation, or professional counseling. " +
			"For immediate danger, call emergency services.",
		Footer: "You are not alone. For immediate danger, call 100 (Police) or 1091 (Domestic Violence Helpline). " +
			"This service is confidential and available 24/7 for everyone.",
		QuickReplies: []string{
			"I need immediate help",
			"Legal advice about domestic violence laws",
			"How to file a complaint",
			"Emotional support",
			"Safety planning",
			"Financial assistance schemes",
			"Child custody rights",
			"Protection orders",
		},
	}
}
