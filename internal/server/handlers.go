package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kirchhoff"
)

const outcomeInvalid = "invalid"

func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"variant": s.cfg.Variant,
		"sets":    s.repo.Len(),
	})
}

func (s *Server) ListSets(c *gin.Context) {
	sets := make([]SetResponse, 0, s.repo.Len())
	for _, id := range s.repo.IDs() {
		set, _ := s.repo.Lookup(id)
		sets = append(sets, s.setResponse(set))
	}
	c.JSON(http.StatusOK, gin.H{"sets": sets})
}

func (s *Server) GetSet(c *gin.Context) {
	set, err := s.repo.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": kirchhoff.InvalidSetMessage})
		return
	}
	c.JSON(http.StatusOK, s.setResponse(set))
}

func (s *Server) setResponse(set kirchhoff.ProblemSet) SetResponse {
	return SetResponse{ID: set.ID, Circuit: set.Circuit, Diagram: s.cfg.DiagramFor(set.ID)}
}

func (s *Server) HandleAnswers(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "detail": err.Error()})
		return
	}

	verdict, err := s.checkAnswers(req.Set, kirchhoff.Currents{req.Currents[0], req.Currents[1], req.Currents[2]}, req.Name)
	if err != nil {
		s.writeCheckError(c, err)
		return
	}

	resp := AnswerResponse{
		Set:     req.Set,
		Outcome: verdict.Outcome.String(),
		Result:  verdict.Outcome.Label(),
		Message: verdict.Message(),
	}
	if verdict.Outcome == kirchhoff.WithinTolerance {
		resp.Differences = verdict.Differences[:]
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) HandleEquations(c *gin.Context) {
	var req EquationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "detail": err.Error()})
		return
	}

	report, err := s.checkEquations(req.Set, toEquations(req.Equations), req.Name)
	if err != nil {
		s.writeCheckError(c, err)
		return
	}

	resp := EquationResponse{
		Set:      req.Set,
		Matches:  report.Matches,
		Result:   report.Outcome().Label(),
		Messages: report.Messages(),
	}
	if report.IndependenceChecked {
		independent := report.Independent
		resp.Independent = &independent
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) writeCheckError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, kirchhoff.ErrUnknownSet):
		c.JSON(http.StatusBadRequest, gin.H{"error": kirchhoff.InvalidSetMessage})
	case errors.Is(err, kirchhoff.ErrEquationCheckingDisabled):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		s.log.Error("check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// checkAnswers grades, records metrics and dispatches the submission log.
func (s *Server) checkAnswers(setID string, currents kirchhoff.Currents, name string) (kirchhoff.Verdict, error) {
	verdict, err := s.checker.Check(setID, currents)
	if err != nil {
		if errors.Is(err, kirchhoff.ErrUnknownSet) {
			s.metrics.RecordSubmission(kirchhoff.KindCurrents, outcomeInvalid)
		}
		return kirchhoff.Verdict{}, err
	}

	s.metrics.RecordSubmission(kirchhoff.KindCurrents, verdict.Outcome.String())
	s.dispatch(kirchhoff.NewCurrentsRecord(verdict, name, s.now()))
	return verdict, nil
}

func (s *Server) checkEquations(setID string, eqs []kirchhoff.Equation, name string) (kirchhoff.EquationReport, error) {
	report, err := s.validator.Validate(setID, eqs)
	if err != nil {
		if errors.Is(err, kirchhoff.ErrUnknownSet) {
			s.metrics.RecordSubmission(kirchhoff.KindEquations, outcomeInvalid)
		}
		return kirchhoff.EquationReport{}, err
	}

	s.metrics.RecordSubmission(kirchhoff.KindEquations, report.Outcome().String())
	s.dispatch(kirchhoff.NewEquationsRecord(report, name, s.now()))
	return report, nil
}
