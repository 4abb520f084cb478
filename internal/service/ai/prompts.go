package ai

import (
	"fmt"
	"strings"
)

// DiarySummaryQuery asks for a four-sentence Korean summary with a clear narrative arc,
// returned as {"response": [four strings]}. The example keeps literal \n and \t escapes.
const DiarySummaryQuery = `이 일기 내용을 명확한 기승전결이 있는 4개의 문장으로 요약해주세요. 요약문은 한국어로 작성되어야 합니다. ` +
	`Beautify된 Json 형태의 반환 양식을 무조건 지켜 주세요.` +
	` 예시: {\n\t"response": [\n\t\t"1번째 문장", \n\t\t"2번째 문장", \n\t\t"3번째 문장", \n\t\t"4번째 문장"\n\t]\n}`

// LetterQuery asks for a warm letter of comfort and encouragement in Korean.
const LetterQuery = "이 일기 내용을 바탕으로 따뜻한 위로와 격려의 편지를 한국어로 작성해주세요."

// LetterContext formats the diary text and emotion code for the letter prompt.
func LetterContext(contents string, emotionCode int) string {
	return fmt.Sprintf("일기 내용: %s\n감정 코드: %d", contents, emotionCode)
}

// BuildRAGPrompt joins the query, optional reference passages and the context into one prompt.
// Without references the result is query + " " + context.
func BuildRAGPrompt(query, context string, references []string) string {
	var b strings.Builder
	b.WriteString(query)

	refs := make([]string, 0, len(references))
	for _, r := range references {
		if r = strings.TrimSpace(r); r != "" {
			refs = append(refs, r)
		}
	}
	if len(refs) > 0 {
		b.WriteString("\n\n참고 자료:\n")
		for i, r := range refs {
			fmt.Fprintf(&b, "[%d] %s\n", i+1, r)
		}
		b.WriteString("\n")
	} else {
		b.WriteString(" ")
	}

	b.WriteString(context)
	return b.String()
}
