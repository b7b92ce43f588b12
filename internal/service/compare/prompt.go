package compare

import "fmt"

const comparePromptIntro = "Please compare how different AI models respond to this prompt:"

// BuildComparePrompt renders the instruction used by the compare_models_prompt prompt.
// models is an optional comma-separated list.
func BuildComparePrompt(prompt, models string) string {
	if models != "" {
		return fmt.Sprintf("%s\n\nPrompt: %s\n\nPlease use these specific models: %s", comparePromptIntro, prompt, models)
	}
	return fmt.Sprintf("%s\n\nPrompt: %s\n\nPlease use the default models available.", comparePromptIntro, prompt)
}
