// Package service wires the summarization core's components together:
// given every agent's TRAPI answer for one query, it builds the
// cross-agent canonical-ID resolver, folds each agent's message into a
// SummaryFragment, and merges the fragments into the final, deduplicated
// summary.
package service

import (
	"github.com/ncats-translator/trapi-summarizer/internal/canon"
	"github.com/ncats-translator/trapi-summarizer/internal/domain"
	"github.com/ncats-translator/trapi-summarizer/internal/fragment"
	"github.com/ncats-translator/trapi-summarizer/internal/summary"
	"github.com/sirupsen/logrus"
)

// Summarizer runs the single-threaded, synchronous summarization pipeline.
// It holds no state beyond configuration and a logger; every call to
// Summarize is independent.
type Summarizer struct {
	maxHops  int
	resolver domain.PublicationResolver
	log      *logrus.Logger
}

// New builds a Summarizer. resolver may be nil, in which case every
// publication ID goes unresolved and the final summary carries none.
func New(maxHops int, resolver domain.PublicationResolver, logger *logrus.Logger) *Summarizer {
	if logger == nil {
		logger = logrus.New()
	}
	return &Summarizer{maxHops: maxHops, resolver: resolver, log: logger}
}

// Summarize folds every agent's answer and merges the result into one
// FinalSummary for qid. It returns an error only for a programmer contract
// violation (negative maxHops) — per §7, a malformed individual answer or
// result is absorbed by the fragment builder's recover-and-continue policy
// and never surfaces here.
func (s *Summarizer) Summarize(qid string, answers []domain.AgentAnswer) (domain.FinalSummary, error) {
	if s.maxHops < 0 {
		return domain.FinalSummary{}, domain.NewPipelineError(domain.ErrInvalidArgument, "maxHops must be non-negative", "", qid)
	}

	nodeSets := make([]canon.AgentNodes, 0, len(answers))
	for _, answer := range answers {
		nodeSets = append(nodeSets, canon.AgentNodes(answer.Message.KnowledgeGraph.Nodes))
	}
	resolver := canon.Build(nodeSets)

	condensed := make([]domain.CondensedSummary, 0, len(answers))
	for _, answer := range answers {
		frag := fragment.Build(answer.Message, resolver, s.maxHops)
		condensed = append(condensed, domain.CondensedSummary{Agent: answer.Agent, Fragment: frag})
		s.log.WithFields(logrus.Fields{
			"qid":   qid,
			"agent": answer.Agent,
			"paths": len(frag.Paths),
		}).Debug("folded agent answer into fragment")
	}

	final := summary.Merge(qid, condensed, s.resolver)
	s.log.WithFields(logrus.Fields{
		"qid":     qid,
		"results": len(final.Results),
		"aras":    len(final.Meta.Aras),
	}).Info("merged agent fragments into final summary")
	return final, nil
}
