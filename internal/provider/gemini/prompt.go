package gemini

import (
	"fmt"
	"strings"

	"github.com/agdealers8/learn-and-conquer/internal/provider"
)

// rtlLanguages are languages whose replies should note right-to-left script.
var rtlLanguages = map[string]bool{
	"Arabic": true,
	"Urdu":   true,
}

// systemInstruction derives the tutoring persona deterministically from the
// student's profile. The same profile always yields the same instruction.
func systemInstruction(profile provider.Profile) *content {
	var sb strings.Builder
	sb.WriteString("You are Learn & Conquer, a patient and encouraging study tutor.")

	if profile.Province != "" || profile.Country != "" {
		location := profile.Province
		if location != "" && profile.Country != "" {
			location += ", "
		}
		location += profile.Country
		sb.WriteString(fmt.Sprintf(" The student lives in %s.", location))
	}
	if profile.Grade != "" {
		sb.WriteString(fmt.Sprintf(" The student is at %s level.", profile.Grade))
	}
	if profile.Syllabus != "" {
		sb.WriteString(fmt.Sprintf(" Align explanations with the %s syllabus.", profile.Syllabus))
	}

	language := profile.Language
	if language == "" {
		language = "English"
	}
	sb.WriteString(fmt.Sprintf(" Always reply in %s.", language))
	if rtlLanguages[language] {
		sb.WriteString(" This language is written right to left; format your reply accordingly.")
	}

	return &content{Parts: []part{{Text: sb.String()}}}
}

func flashcardPrompt(topic string) string {
	return fmt.Sprintf(
		"Create exactly %d flashcards about %q. Each card has a concise question or term on the front, "+
			"a clear answer or definition on the back, and a short single-word or two-word imageKeyword "+
			"describing a picture that would help memorize the card.",
		provider.FlashcardCount, topic)
}

func quizPrompt(topic, requirements string) string {
	prompt := fmt.Sprintf(
		"Create a multiple-choice quiz about %q. Each question has one correct option, "+
			"a correctAnswerIndex pointing at it, and a brief explanation of the answer.",
		topic)
	if strings.TrimSpace(requirements) != "" {
		prompt += " Additional requirements: " + requirements
	}
	return prompt
}

func summarizePrompt(text string) string {
	return "Summarize the following study material into a few short paragraphs a student can revise from. " +
		"Keep key terms and definitions.\n\n" + text
}

func schedulePrompt(freeform string) string {
	return "Plan a study schedule from this description of the student's day and goals. " +
		"Return ordered sessions with a start time, an activity, a duration in minutes and optional notes.\n\n" + freeform
}

func resourcePrompt(query string) string {
	return fmt.Sprintf(
		"Search the web for one high-quality free learning resource about %q and describe in two sentences why it helps.",
		query)
}

func illustrationPrompt(keyword string) string {
	return fmt.Sprintf(
		"Generate a simple, friendly illustration of %q suitable as a small study flashcard image. No text in the image.",
		keyword)
}

func analyzePrompt() string {
	return "This is a student's whiteboard drawing. Interpret what it shows, point out anything incorrect, " +
		"and explain the underlying concept in a few sentences."
}

func flashcardSchema() *schema {
	return &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"front":        {Type: "STRING", Description: "question or term"},
				"back":         {Type: "STRING", Description: "answer or definition"},
				"imageKeyword": {Type: "STRING", Description: "short keyword for an illustration"},
			},
			Required: []string{"front", "back"},
		},
	}
}

func quizSchema() *schema {
	return &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"question":           {Type: "STRING"},
				"options":            {Type: "ARRAY", Items: &schema{Type: "STRING"}},
				"correctAnswerIndex": {Type: "INTEGER"},
				"explanation":        {Type: "STRING"},
			},
			Required: []string{"question", "options", "correctAnswerIndex"},
		},
	}
}

func scheduleSchema() *schema {
	return &schema{
		Type: "ARRAY",
		Items: &schema{
			Type: "OBJECT",
			Properties: map[string]*schema{
				"time":            {Type: "STRING", Description: "start time, e.g. 16:30"},
				"activity":        {Type: "STRING"},
				"durationMinutes": {Type: "INTEGER"},
				"notes":           {Type: "STRING"},
			},
			Required: []string{"time", "activity", "durationMinutes"},
		},
	}
}
