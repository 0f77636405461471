package grader

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hwei-lab/cogscreen/internal/llm"
)

func TestLLMGrader_HappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":2,"reasoning":"完成2步"}`),
	})
	g := NewLLMGrader(mock)

	res, err := g.Grade(context.Background(), Request{
		QuestionID: "mmse_command",
		Prompt:     "三步命令",
		Rubric:     "each step one point",
		Answer:     "拿纸，对折",
		MaxScore:   3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 2 {
		t.Errorf("score = %d, want 2", res.Score)
	}
	if res.Reasoning != "完成2步" {
		t.Errorf("reasoning = %q", res.Reasoning)
	}
	if mock.CallCount() != 1 {
		t.Errorf("call count = %d, want 1", mock.CallCount())
	}
}

func TestLLMGrader_ClampsScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"above max", `{"score":9,"reasoning":"过高"}`, 3},
		{"at max", `{"score":3,"reasoning":"满分"}`, 3},
		{"zero", `{"score":0,"reasoning":"零分"}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.content)})
			g := NewLLMGrader(mock)
			res, err := g.Grade(context.Background(), Request{QuestionID: "q", MaxScore: 3})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Score != tt.want {
				t.Errorf("score = %d, want %d", res.Score, tt.want)
			}
		})
	}
}

func TestLLMGrader_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	g := NewLLMGrader(mock)

	_, err := g.Grade(context.Background(), Request{QuestionID: "q"})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
}

func TestLLMGrader_SendsAttachments(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":1,"reasoning":"符合要求"}`),
	})
	g := NewLLMGrader(mock)

	_, err := g.Grade(context.Background(), Request{
		QuestionID: "mmse_copy_pentagon",
		Image:      []byte{0x89, 0x50},
		ImageMIME:  "image/png",
		Audio:      []byte{0x1a},
		MaxScore:   1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	atts := mock.Calls[0].Messages[0].Attachments
	if len(atts) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(atts))
	}
	if atts[0].Kind != llm.AttachmentImage || atts[0].MIMEType != "image/png" {
		t.Errorf("unexpected image attachment: %+v", atts[0])
	}
	if atts[1].Kind != llm.AttachmentAudio || atts[1].MIMEType != "audio/webm" {
		t.Errorf("unexpected audio attachment: %+v", atts[1])
	}
}

func TestParseResult_Fallback(t *testing.T) {
	res, err := parseResult(json.RawMessage(`评分结果: {"score": 2, "reasoning": "部分正确"} 以上`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 2 {
		t.Errorf("score = %d, want 2", res.Score)
	}
}

func TestParseResult_NoScore(t *testing.T) {
	_, err := parseResult(json.RawMessage(`完全无法解析`))
	if err == nil {
		t.Fatal("expected error")
	}
	var inv *llm.ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestMockGrader_FIFO(t *testing.T) {
	m := NewMockGrader(
		MockOutcome{Result: &Result{Score: 1, Reasoning: "first"}},
		MockOutcome{Err: errors.New("boom")},
	)

	res, err := m.Grade(context.Background(), Request{QuestionID: "a"})
	if err != nil || res.Score != 1 {
		t.Fatalf("first outcome = (%v, %v)", res, err)
	}
	if _, err := m.Grade(context.Background(), Request{QuestionID: "b"}); err == nil {
		t.Fatal("expected second outcome to error")
	}
	if _, err := m.Grade(context.Background(), Request{QuestionID: "c"}); err == nil {
		t.Fatal("expected empty queue to error")
	}
	if len(m.Calls) != 3 {
		t.Errorf("recorded %d calls, want 3", len(m.Calls))
	}
}
