package assistant

import (
	"fmt"
	"strings"

	"github.com/neervaani/neerhub/internal/common"
)

// Fallback responses spoken when a turn cannot complete normally. These are
// fixed strings so the voice client's behavior stays predictable.
const (
	fallbackSummaryFailed = "I was able to fetch some information, but I'm having trouble summarizing it. Could you please rephrase your question?"

	fallbackNoResponse = "I'm not sure how to respond to that. Could you please rephrase your question?"

	fallbackLocationData = "I'm sorry, I don't have environmental data for the location you provided. Currently, I have detailed data for Pune and Bangalore. Please try one of those locations, or use the full agent in the NeerHub to enter the data manually."

	fallbackGeneric = "I'm sorry, I encountered an unexpected error and can't respond right now. Please try again in a moment."
)

// routingSystemPrompt is the system instruction for the first router call
func routingSystemPrompt(languageCode string) string {
	language := common.LanguageName(languageCode)

	var b strings.Builder
	b.WriteString("You are NeerVaani, a friendly and helpful AI assistant for Indian farmers. ")
	fmt.Fprintf(&b, "The farmer speaks %s; respond in %s.\n\n", language, language)
	b.WriteString("Instructions:\n")
	b.WriteString("1. If the farmer's question matches one of your tools, call that tool with the details extracted from the question. Call at most one tool.\n")
	b.WriteString("2. If a tool needs information the farmer has not given (such as a location), do not call the tool; ask the farmer for the missing detail instead.\n")
	b.WriteString("3. For greetings, small talk, and general farming questions that no tool covers, answer directly from your own knowledge.\n")
	b.WriteString("4. Keep answers short and conversational; they will be read aloud to the farmer.\n")
	b.WriteString("5. Never mention tools, functions, or internal systems to the farmer.\n")
	return b.String()
}

// synthesisPrompt builds the second-call prompt that turns a tool result into
// a spoken answer.
func synthesisPrompt(query, languageCode, toolName string, toolJSON []byte) string {
	language := common.LanguageName(languageCode)

	var b strings.Builder
	b.WriteString("You are NeerVaani, a friendly and helpful AI assistant for Indian farmers. ")
	fmt.Fprintf(&b, "A farmer asked: %q\n\n", query)
	fmt.Fprintf(&b, "The %s tool returned this data:\n```json\n%s\n```\n\n", toolName, toolJSON)
	fmt.Fprintf(&b, "Summarize the most useful findings as a short, conversational answer in %s. ", language)
	b.WriteString("The answer will be read aloud, so avoid lists, markdown, and technical field names.")
	return b.String()
}
