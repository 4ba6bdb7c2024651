package ui

import (
	"context"
	"time"

	"github.com/agdealers8/learn-and-conquer/internal/export"
	"github.com/agdealers8/learn-and-conquer/internal/flashcard"
	"github.com/agdealers8/learn-and-conquer/internal/library"
	"github.com/agdealers8/learn-and-conquer/internal/provider"
	tea "github.com/charmbracelet/bubbletea"
)

// startChatCmd opens the fragment stream for a new chat turn.
func startChatCmd(client provider.Client, history []provider.Message, text string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		ch, err := client.StreamChat(context.Background(), history, text, profile)
		if err != nil {
			return chatFailedMsg{err: err}
		}
		return chatStartedMsg{ch: ch}
	}
}

// listenFragmentCmd waits for the next fragment. The channel closing signals
// a completed stream.
func listenFragmentCmd(ch <-chan provider.Fragment) tea.Cmd {
	return func() tea.Msg {
		fragment, ok := <-ch
		if !ok {
			return chatStreamClosedMsg{}
		}
		return chatFragmentMsg{fragment: fragment, ch: ch}
	}
}

func generateFlashcardsCmd(client provider.Client, topic string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		cards, err := client.GenerateFlashcards(context.Background(), topic, profile)
		return flashcardsMsg{topic: topic, cards: cards, err: err}
	}
}

// fetchIllustrationCmd fetches an illustration for one specific card. The
// card id is captured now; the write-back must never key off whatever card is
// current when the fetch resolves.
func fetchIllustrationCmd(client provider.Client, cardID, keyword string) tea.Cmd {
	return func() tea.Msg {
		image, err := client.GenerateIllustration(context.Background(), keyword)
		if err != nil {
			return illustrationMsg{cardID: cardID, err: err}
		}
		if image == nil {
			return illustrationMsg{cardID: cardID}
		}
		return illustrationMsg{cardID: cardID, dataURI: image.DataURI()}
	}
}

func generateQuizCmd(client provider.Client, topic, requirements string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		questions, err := client.GenerateQuiz(context.Background(), topic, requirements, profile)
		return quizMsg{questions: questions, err: err}
	}
}

func generateScheduleCmd(client provider.Client, freeform string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		sessions, err := client.GenerateSchedule(context.Background(), freeform, profile)
		return scheduleMsg{sessions: sessions, err: err}
	}
}

func summarizeCmd(client provider.Client, text string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		summary, err := client.Summarize(context.Background(), text, profile)
		return summaryMsg{text: summary, err: err}
	}
}

func searchExternalCmd(resolver *library.Resolver, query string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		resource, err := resolver.SearchExternal(context.Background(), query, profile)
		return resourceMsg{resource: resource, err: err}
	}
}

func analyzeImageCmd(client provider.Client, imageData, mimeType string, profile provider.Profile) tea.Cmd {
	return func() tea.Msg {
		analysis, err := client.AnalyzeImage(context.Background(), imageData, mimeType, profile)
		return analysisMsg{text: analysis, err: err}
	}
}

func exportDeckCmd(dir string, deck *flashcard.Deck) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteFlashcardsJSON(dir, deck)
		return exportedMsg{path: path, err: err}
	}
}

// exportSummaryCmd writes a summary study sheet and, when asked, converts it
// to PDF as well.
func exportSummaryCmd(dir, topic, summary string, pdf bool) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WriteSummaryMarkdown(dir, topic, summary)
		if err != nil {
			return notePDFMsg{err: err}
		}
		if pdf {
			if path, err = export.ConvertMarkdownToPDF(path); err != nil {
				return notePDFMsg{err: err}
			}
		}
		return notePDFMsg{path: path}
	}
}

// timerTickCmd schedules the next one-second countdown tick.
func timerTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
