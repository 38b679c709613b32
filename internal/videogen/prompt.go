package videogen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"examshorts/api-gateway/models"
)

// maxScriptWords is the word-count ceiling requested from the generation API.
const maxScriptWords = 250

// BuildPrompt renders the natural-language prompt sent to the text-generation
// API for a question set. The prompt fixes the script structure (intro,
// questions, call to action) and spells out how mathematical notation must be
// converted to spoken words, so the result can be narrated directly.
func BuildPrompt(questions []models.Question, examName string) string {
	intro := fmt.Sprintf("Hello everyone! Today, we're going to solve some challenging questions for the upcoming %s entrance exam. Let's dive in!", examName)

	callToAction := fmt.Sprintf("The answer and solution will appear in the last 5 seconds of this video. "+
		"Till then, if you're looking for a complete guide for %s, follow and comment '%s' and it will be in your DMs!",
		examName, examAcronym(examName))

	var sections strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sections, "Question %d: So, the question says: %s. ", i+1, q.Statement)
		if len(q.Options) > 0 {
			pairs := lo.Map(sortedLabels(q.Options), func(label string, _ int) string {
				return fmt.Sprintf("%s: %s", label, q.Options[label])
			})
			fmt.Fprintf(&sections, "Here are your options: %s. ", strings.Join(pairs, ", "))
		}
		sections.WriteString("You'll have a 5-second countdown to think about it. ")
	}

	var b strings.Builder
	b.WriteString("You are an AI video script generator for educational content, specifically for Instagram Reels explaining mathematical problems.\n\n")
	b.WriteString("Your task is to create a concise, engaging, and clear script for a voice-over that will be converted to speech.\n\n")
	b.WriteString("CRITICAL INSTRUCTIONS for mathematical symbols:\n")
	b.WriteString("- Convert ALL mathematical symbols to spoken words\n")
	b.WriteString("- x^2 becomes \"x squared\", x^3 becomes \"x cubed\"\n")
	b.WriteString("- sqrt(x) becomes \"square root of x\"\n")
	b.WriteString("- a/b becomes \"a over b\" or \"fraction a over b\"\n")
	b.WriteString("- integral, summation, pi, infinity are spoken as those words\n")
	b.WriteString("- sin, cos, tan become \"sine, cosine, tangent\"\n")
	b.WriteString("- log becomes \"logarithm\", ln becomes \"natural log\"\n")
	b.WriteString("- +- becomes \"plus or minus\"; <= and >= become \"less than or equal to\" and \"greater than or equal to\"\n\n")
	b.WriteString("The script should follow this exact structure:\n\n")
	fmt.Fprintf(&b, "1. Introduction: \"%s\"\n\n", intro)
	fmt.Fprintf(&b, "2. Questions: %s\n\n", sections.String())
	fmt.Fprintf(&b, "3. Call to Action: \"%s\"\n\n", callToAction)
	fmt.Fprintf(&b, "Make the tone encouraging and educational. Keep it concise for an Instagram Reel, ideally under %d words. ", maxScriptWords)
	b.WriteString("Ensure all mathematical expressions are converted to natural speech patterns.\n\n")
	b.WriteString("Generate ONLY the final script text, no additional formatting or explanations.")

	return b.String()
}

// examAcronym builds the short hook viewers comment with: first letters of
// the exam name's words longer than two characters, uppercased.
func examAcronym(examName string) string {
	var letters []string
	for _, word := range strings.Fields(examName) {
		if len(word) > 2 {
			letters = append(letters, string([]rune(word)[0]))
		}
	}
	return strings.ToUpper(strings.Join(letters, ""))
}

// solutionRevealText renders one line per question: 1-based ordinal, answer
// label, solution explanation. Empty question sets yield an empty string.
func solutionRevealText(questions []models.Question) string {
	lines := lo.Map(questions, func(q models.Question, i int) string {
		return fmt.Sprintf("%d. Answer: %s. %s", i+1, q.Answer, q.Solution)
	})
	return strings.Join(lines, "\n")
}

// sortedLabels keeps option rendering stable; the options column is an
// unordered JSON object.
func sortedLabels(options map[string]string) []string {
	labels := lo.Keys(options)
	sort.Strings(labels)
	return labels
}
