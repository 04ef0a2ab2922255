// Package application contains use-case orchestration services.
package application

import (
	"log/slog"
	"slices"

	"github.com/ericfisherdev/formfill/internal/domain/model"
)

// hintRule maps a kind to the tokens that identify it. Rules are listed in
// canonical kind order; the first matching rule wins.
type hintRule struct {
	kind     model.FieldKind
	native   string
	document string
}

var hintRules = []hintRule{
	{model.FieldKindCreditCardNumber, "cc-number", "CREDIT_CARD_NUMBER"},
	{model.FieldKindCreditCardExpiry, "cc-exp", "CREDIT_CARD_EXP_DATE_2_DIGIT_YEAR"},
	{model.FieldKindCreditCardSecurityCode, "cc-csc", "CREDIT_CARD_VERIFICATION_CODE"},
	{model.FieldKindFullName, "name", "NAME_FULL"},
	{model.FieldKindTelephoneNumber, "tel", "PHONE_HOME_WHOLE_NUMBER"},
	{model.FieldKindEmailAddress, "email", "EMAIL_ADDRESS"},
}

// FieldClassifier walks field trees and resolves each leaf to a FieldKind.
// It is stateless apart from its logger and safe for concurrent use.
type FieldClassifier struct {
	logger *slog.Logger
}

// NewFieldClassifier creates a FieldClassifier. A nil logger falls back to slog.Default().
func NewFieldClassifier(logger *slog.Logger) *FieldClassifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldClassifier{logger: logger}
}

// Classify visits every root in order, depth-first and pre-order, and
// returns one ClassifiedField per leaf whose kind is not Unknown, in visit
// order. A node is a leaf when it has no children. Nil nodes are skipped.
//
// The walk uses an explicit stack, so arbitrarily deep trees cannot exhaust
// the goroutine stack.
func (c *FieldClassifier) Classify(roots ...model.FieldNode) []model.ClassifiedField {
	var out []model.ClassifiedField

	stack := make([]model.FieldNode, 0, len(roots))
	for _, root := range slices.Backward(roots) {
		stack = pushNode(stack, root)
	}

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := node.ChildCount()
		if n == 0 {
			kind := c.analyseLeaf(node)
			if kind != model.FieldKindUnknown {
				out = append(out, model.ClassifiedField{Field: node.ID(), Kind: kind})
			}
			continue
		}

		for i := n - 1; i >= 0; i-- {
			stack = pushNode(stack, node.ChildAt(i))
		}
	}

	return out
}

func pushNode(stack []model.FieldNode, n model.FieldNode) []model.FieldNode {
	if n == nil {
		return stack
	}
	return append(stack, n)
}

func (c *FieldClassifier) analyseLeaf(node model.FieldNode) model.FieldKind {
	kind := ResolveKind(node)

	nativeHints := node.NativeHints()
	documentHint, hasDocumentHint := node.DocumentHint()

	c.logger.Debug("field analysed",
		"field_id", node.ID(),
		"native_hints", nativeHints,
		"document_hint", documentHint,
		"kind", kind,
	)

	if kind == model.FieldKindUnknown && len(nativeHints) > 0 && hasDocumentHint {
		c.logger.Warn("failed to recognise field hints",
			"field_id", node.ID(),
			"native_hints", nativeHints,
			"document_hint", documentHint,
		)
	}

	return kind
}

// ResolveKind classifies a single node. Native hints take precedence over the
// document hint; a node matching neither is Unknown.
func ResolveKind(node model.FieldNode) model.FieldKind {
	if kind := kindFromNativeHints(node.NativeHints()); kind != model.FieldKindUnknown {
		return kind
	}
	if hint, ok := node.DocumentHint(); ok {
		return kindFromDocumentHint(hint)
	}
	return model.FieldKindUnknown
}

func kindFromNativeHints(hints []string) model.FieldKind {
	if len(hints) == 0 {
		return model.FieldKindUnknown
	}
	for _, rule := range hintRules {
		if slices.Contains(hints, rule.native) {
			return rule.kind
		}
	}
	return model.FieldKindUnknown
}

func kindFromDocumentHint(hint string) model.FieldKind {
	if hint == "" {
		return model.FieldKindUnknown
	}
	for _, rule := range hintRules {
		if hint == rule.document {
			return rule.kind
		}
	}
	return model.FieldKindUnknown
}
