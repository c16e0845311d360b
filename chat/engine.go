// Package chat rebuilds a hosted conversation for every request and turns
// the newest user message into one response.
package chat

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"owusu1946/portfolio-chat/llm"
	"owusu1946/portfolio-chat/tools"
	"owusu1946/portfolio-chat/types"
)

// ErrSessionBootstrap wraps failures to deliver the system preamble. It
// aborts the whole request.
var ErrSessionBootstrap = errors.New("failed to initialize chat with system prompt")

// Result is a response plus what it took to produce it.
type Result struct {
	Response types.ChatResponse
	Action   tools.Action
	// Replayed counts prior user turns resent before the current one.
	Replayed int
	// Degraded is set when the model call for the turn failed and the
	// content was left empty.
	Degraded bool
}

type Engine struct {
	classifier *tools.Classifier
	preamble   string
	log        logrus.FieldLogger
}

// NewEngine builds an engine. A nil classifier means the default rules.
func NewEngine(classifier *tools.Classifier, preamble string, log logrus.FieldLogger) *Engine {
	if classifier == nil {
		classifier = tools.NewClassifier()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{classifier: classifier, preamble: preamble, log: log}
}

// Respond answers the last message of a validated history. Model calls are
// made one after the other on a fresh session: the preamble, then either
// the tool acknowledgement or the replayed user turns and the current turn.
func (e *Engine) Respond(ctx context.Context, model llm.Model, messages []types.Message) (Result, error) {
	if err := (types.ChatRequest{Messages: messages}).Validate(); err != nil {
		return Result{}, err
	}

	session := model.StartChat()
	if _, err := session.SendMessage(ctx, e.preamble); err != nil {
		return Result{}, errors.Wrapf(ErrSessionBootstrap, "%v", err)
	}
	e.log.Debug("System prompt added")

	current := messages[len(messages)-1]
	action := e.classifier.ClassifyLatest(messages)

	if action != tools.ActionNone {
		return e.respondWithTool(ctx, session, current, action), nil
	}
	return e.replay(ctx, session, messages[:len(messages)-1], current), nil
}

func (e *Engine) respondWithTool(ctx context.Context, session llm.Session, current types.Message, action tools.Action) Result {
	log := e.log.WithFields(logrus.Fields{
		"tool": action.String(),
		"rule": e.classifier.Explain(current.Content),
	})
	log.Info("Tool detected")

	res := Result{
		Action: action,
		Response: types.ChatResponse{
			ToolName:   string(action),
			ToolResult: action.Payload(),
		},
	}

	start := time.Now()
	text, err := session.SendMessage(ctx, current.Content+"\n"+action.Instruction())
	if err != nil {
		log.WithError(err).Error("Tool acknowledgement failed, returning tool without commentary")
		res.Degraded = true
	} else {
		res.Response.Content = text
		log.WithField("duration", time.Since(start)).Debug("Tool acknowledgement received")
	}

	res.Response = res.Response.Normalize()
	return res
}

// replay resends prior user turns so the session sees the conversation the
// visitor saw. Assistant turns are skipped; the session produces its own.
func (e *Engine) replay(ctx context.Context, session llm.Session, prior []types.Message, current types.Message) Result {
	var res Result
	tokens := 0
	start := time.Now()

	for _, m := range prior {
		if m.Role != types.RoleUser {
			continue
		}
		if _, err := session.SendMessage(ctx, m.Content); err != nil {
			e.log.WithError(err).WithField("turn", res.Replayed).Error("Replaying previous message failed")
			res.Degraded = true
			res.Response = res.Response.Normalize()
			return res
		}
		res.Replayed++
		tokens += llm.EstimateTokens(m.Content)
	}

	text, err := session.SendMessage(ctx, current.Content)
	if err != nil {
		e.log.WithError(err).Error("Processing last message failed")
		res.Degraded = true
	} else {
		res.Response.Content = text
	}

	e.log.WithFields(logrus.Fields{
		"turns":         res.Replayed,
		"replay_tokens": tokens,
		"duration":      time.Since(start),
	}).Info("No tool detected, processed as regular message")

	res.Response = res.Response.Normalize()
	return res
}
