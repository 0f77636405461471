package grader

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hwei-lab/cogscreen/internal/llm"
)

const systemPrompt = `You are a professional medical assistant grading responses from Chinese cognitive screening scales (MMSE, MoCA, ADL). Follow the scoring rubric for each question exactly. Be strict but fair. Respond ONLY with a JSON object {"score": <integer>, "reasoning": "<简短中文说明>"}.`

// gradeSchema constrains the LLM output to a score plus reasoning.
var gradeSchema = &llm.Schema{
	Name:        "grade-result",
	Description: "Score and reasoning for one screening answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"description": "points awarded for this answer",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "short Chinese explanation of the grade",
			},
		},
		"required":             []any{"score", "reasoning"},
		"additionalProperties": false,
	},
}

// LLMGrader grades answers through an llm.Provider.
type LLMGrader struct {
	provider  llm.Provider
	maxTokens int
}

var _ Grader = (*LLMGrader)(nil)

// NewLLMGrader creates a grader backed by the given provider.
func NewLLMGrader(p llm.Provider) *LLMGrader {
	return &LLMGrader{provider: p, maxTokens: 500}
}

// Grade sends the rubric, answer, and any media to the LLM and parses
// the structured result. The returned score is clamped to
// [0, req.MaxScore].
func (g *LLMGrader) Grade(ctx context.Context, req Request) (*Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	msg := llm.Message{
		Role:        llm.RoleUser,
		Content:     buildUserContent(req),
		Attachments: buildAttachments(req),
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{msg},
		Schema:    gradeSchema,
		MaxTokens: g.maxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("grade %s: %w", req.QuestionID, err)
	}

	result, err := parseResult(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("grade %s: %w", req.QuestionID, err)
	}

	if result.Score < 0 {
		result.Score = 0
	}
	if req.MaxScore > 0 && result.Score > req.MaxScore {
		result.Score = req.MaxScore
	}
	return result, nil
}

func buildUserContent(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "【题目】%s\n", req.Prompt)
	if req.Category != "" {
		fmt.Fprintf(&b, "【类别】%s\n", req.Category)
	}
	fmt.Fprintf(&b, "【满分】%d\n", req.MaxScore)
	fmt.Fprintf(&b, "【评分标准】\n%s\n", req.Rubric)
	if req.Answer != "" {
		fmt.Fprintf(&b, "【回答】%s\n", req.Answer)
	}
	if len(req.Image) > 0 {
		b.WriteString("【附件】见图片\n")
	}
	if len(req.Audio) > 0 {
		b.WriteString("【附件】见录音\n")
	}
	return b.String()
}

func buildAttachments(req Request) []llm.Attachment {
	var atts []llm.Attachment
	if len(req.Image) > 0 {
		mime := req.ImageMIME
		if mime == "" {
			mime = "image/png"
		}
		atts = append(atts, llm.Attachment{Kind: llm.AttachmentImage, MIMEType: mime, Data: req.Image})
	}
	if len(req.Audio) > 0 {
		mime := req.AudioMIME
		if mime == "" {
			mime = "audio/webm"
		}
		atts = append(atts, llm.Attachment{Kind: llm.AttachmentAudio, MIMEType: mime, Data: req.Audio})
	}
	return atts
}

var scorePattern = regexp.MustCompile(`"score"\s*:\s*(\d+)`)

// parseResult decodes the structured grade. Some models wrap the JSON
// in prose despite the schema, so a regex fallback recovers the score
// before giving up.
func parseResult(raw json.RawMessage) (*Result, error) {
	var parsed struct {
		Score     int    `json:"score"`
		Reasoning string `json:"reasoning"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		return &Result{Score: parsed.Score, Reasoning: parsed.Reasoning}, nil
	}

	if m := scorePattern.FindSubmatch(raw); m != nil {
		score, err := strconv.Atoi(string(m[1]))
		if err == nil {
			return &Result{
				Score:     score,
				Reasoning: strings.TrimSpace(string(raw)),
			}, nil
		}
	}

	return nil, &llm.ErrInvalidResponse{
		Content: raw,
		Err:     fmt.Errorf("no grade found in response"),
	}
}
