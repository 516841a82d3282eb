// Package prompts holds the prompt templates used by the LLM-backed services.
package prompts

import (
	"fmt"
	"strings"
)

// WebpageQA builds the retrieval-augmented prompt for webpage questions.
// The model is instructed to answer only from the supplied context and to
// admit when the content is insufficient.
func WebpageQA(title, url, context, question string) string {
	return fmt.Sprintf(`You are a helpful AI assistant answering questions about a webpage.

Webpage Information:
- Title: %s
- URL: %s

Relevant Content from the webpage:
%s

User Question: %s

Please provide a clear, accurate answer based on the content above. If the content doesn't contain enough information to answer the question, say so honestly. Do not make up information.

Answer:`, title, url, context, question)
}

// MeetingMinutes builds the prompt for generating meeting minutes and a task
// list from a transcript.
func MeetingMinutes(transcript string) string {
	return fmt.Sprintf(`Generate meeting minutes and a list of tasks based on the provided context.

Context:
%s

Please provide:

## Meeting Minutes
- Key points discussed
- Decisions made
- Important topics covered

## Task List
- Actionable items with assignees (if mentioned) and deadlines (if mentioned)
- Follow-up actions needed`, transcript)
}

// FinancialFormatting builds the prompt that expands financial acronyms and
// standardizes terminology in earnings-call transcripts.
func FinancialFormatting(transcript string) string {
	return fmt.Sprintf(`You are an intelligent assistant specializing in financial products.
Your task is to process transcripts of earnings calls, ensuring that all
references to financial products and common financial terms are in the correct format.

For each financial product or common term that is typically abbreviated as an acronym,
the full term should be spelled out followed by the acronym in parentheses.

Examples:
- '401k' -> '401(k) retirement savings plan'
- 'HSA' -> 'Health Savings Account (HSA)'
- 'ROA' -> 'Return on Assets (ROA)'
- 'VaR' -> 'Value at Risk (VaR)'
- 'PB' -> 'Price to Book (PB) ratio'
- 'five two nine' -> '529 (Education Savings Plan)'
- 'four zero one k' -> '401(k) (Retirement Savings Plan)'

Note: Some acronyms have different meanings based on context (e.g., 'LTV' can be
'Loan to Value' or 'Lifetime Value'). Discern from context which term is appropriate.

Regular numbers like 'twenty three percent' should be left as is.

After processing, provide:
1. The adjusted transcript
2. A list of the changes you made

Transcript:
%s`, transcript)
}

// Summarize builds a summarization prompt, optionally bounded by a word count.
func Summarize(text string, maxWords int) string {
	var lengthInstruction string
	if maxWords > 0 {
		lengthInstruction = fmt.Sprintf(" Keep the summary under %d words.", maxWords)
	}

	return fmt.Sprintf(`Please provide a concise summary of the following text.%s

Text:
%s

Summary:`, lengthInstruction, text)
}

// DefaultImageAnalysis is the prompt used when an image analysis request
// carries no prompt of its own.
const DefaultImageAnalysis = "Describe what you see in this image in detail. Extract any text present."

// ImageTextExtraction is the OCR-style prompt for extracting text from images.
const ImageTextExtraction = "Please extract all text from this image. " +
	"Preserve the structure and formatting as much as possible. " +
	"If there are any diagrams or visual elements, describe them briefly."

// nutritionTemplate is the fixed analysis template for food photos, including
// the mandatory disclaimer text.
const nutritionTemplate = `You are an expert nutritionist. Your task is to analyze the food items displayed in the image and provide a detailed nutritional assessment using the following format:
1. **Identification**: List each identified food item clearly, one per line.
2. **Portion Size & Calorie Estimation**: For each identified food item, specify the portion size and provide an estimated number of calories. Use bullet points with the following structure:
- **[Food Item]**: [Portion Size], [Number of Calories] calories
Example:
*   **Salmon**: 6 ounces, 210 calories
*   **Asparagus**: 3 spears, 25 calories
3. **Total Calories**: Provide the total number of calories for all food items.
Example:
Total Calories: [Number of Calories]
4. **Nutrient Breakdown**: Include a breakdown of key nutrients such as **Protein**, **Carbohydrates**, **Fats**, **Vitamins**, and **Minerals**. Use bullet points, and for each nutrient provide details about the contribution of each food item.
Example:
*   **Protein**: Salmon (35g), Asparagus (3g), Tomatoes (1g) = [Total Protein]
5. **Health Evaluation**: Evaluate the healthiness of the meal in one paragraph.
6. **Disclaimer**: Include the following exact text as a disclaimer:
The nutritional information and calorie estimates provided are approximate and are based on general food data.
Actual values may vary depending on factors such as portion size, specific ingredients, preparation methods, and individual variations.
For precise dietary advice or medical guidance, consult a qualified nutritionist or healthcare provider.
Format your response exactly like the template above to ensure consistency.`

// NutritionAnalysis combines the nutritionist template with an optional
// caller-supplied prompt.
func NutritionAnalysis(userPrompt string) string {
	if strings.TrimSpace(userPrompt) == "" {
		userPrompt = "Analyze the food items in this image and provide nutritional information including calories, macronutrients, and dietary value."
	}
	return nutritionTemplate + " " + userPrompt
}

// NoMatchFallback is returned verbatim when retrieval finds no relevant
// chunks; the language model is not called in that case.
const NoMatchFallback = "I couldn't find relevant information to answer your question."
