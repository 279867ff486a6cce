package llm

import "strings"

const systemPrompt = "You are a helpful, concise personal finance chat agent. " +
	"Reply in 2-3 short, plain sentences, spaced like a real chat. " +
	"Never use Markdown, never use bullet points, never use headings, never use lists, never use bold or italics. " +
	"No long answers. " +
	"IMPORTANT: All amounts are in Indian Rupees (INR) - always use Rs or ₹ symbol, never dollars ($)."

// BuildChatPrompt assembles the full ai-only prompt: persona, currency
// rules, savings instructions, the transaction context, optional helper
// summaries, and the user's question.
func BuildChatPrompt(context, helper, question string, truncated bool) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")

	b.WriteString("You are a personal finance chat agent. Always reply in 2-3 short, plain sentences, spaced like a real chat. ")
	b.WriteString("Never use Markdown, never use bullet points, never use headings, never use lists, never use bold or italics. ")
	b.WriteString("Do not summarize categories or give long explanations.\n\n")

	b.WriteString("IMPORTANT: All amounts are in Indian Rupees (INR). Always mention amounts with \"Rs\" or \"₹\" symbol, never use dollars ($).\n\n")

	b.WriteString("When asked about saving money or useless spending, do this:\n")
	b.WriteString("For each suggestion, mention the merchant/item, the amount spent in Rs, and if it is above the category median, ")
	b.WriteString("say how much percent higher (e.g., 'You spent Rs 350 on Starbucks, which is 40% higher than your Food median. You can cut this habit.').\n")
	b.WriteString("Give a concrete, actionable suggestion for each, like 'You can save by switching to regular coffee.'\n")
	b.WriteString("If there is nothing to cut, say 'Your spending looks reasonable.'\n\n")

	b.WriteString("Data (one line per transaction)")
	if truncated {
		b.WriteString(" [TRUNCATED]")
	}
	b.WriteString(":\n\n")
	b.WriteString(context)
	b.WriteString("\n\n")

	if helper != "" {
		b.WriteString("Helper summaries:\n")
		b.WriteString(helper)
		b.WriteString("\n\n")
	}

	b.WriteString("Question:\n")
	b.WriteString(question)
	return b.String()
}

// BuildDataPrompt assembles the plain hybrid-mode prompt used after no
// deterministic rule matched.
func BuildDataPrompt(context, question string) string {
	var b strings.Builder
	b.WriteString("You are an AI personal finance assistant.\n")
	b.WriteString("Here is the user's bank data (one per line):\n\n")
	b.WriteString(context)
	b.WriteString("\n\nAnswer the following question based on this data:\n")
	b.WriteString(question)
	return b.String()
}
