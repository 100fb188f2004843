package inference

import "strings"

const promptInstructions = "Please provide a clear and concise summary of the following " +
	"100 AI-related news articles. " +
	"Ensure the summary highlights the most important information, " +
	"is coherent, and flows naturally. " +
	"The output should be structured in a professional manner, " +
	"with attention to readability and clarity, " +
	"making it suitable for inclusion in reports or articles. " +
	"Focus on delivering an insightful overview " +
	"that avoids unnecessary repetition, while maintaining " +
	"a smooth narrative throughout. " +
	"Ensure that no special characters (such as '\\n', '\\t', or other symbols) " +
	"are included in the output."

// BuildPrompt assembles the summarization prompt: the fixed instruction block
// followed by the article lines joined with single spaces. Article text is
// embedded verbatim; the "no special characters" rule is an instruction to
// the model, not enforced here.
func BuildPrompt(articles []string) string {
	return promptInstructions + " " + strings.Join(articles, " ")
}
