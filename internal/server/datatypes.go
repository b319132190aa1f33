package server

import "kirchhoff"

type AnswerRequest struct {
	Set      string    `json:"set" binding:"required"`
	Currents []float64 `json:"currents" binding:"required,len=3"`
	Name     string    `json:"name" binding:"max=100"`
}

type AnswerResponse struct {
	Set         string    `json:"set"`
	Outcome     string    `json:"outcome"`
	Result      string    `json:"result"`
	Message     string    `json:"message"`
	Differences []float64 `json:"differences,omitempty"`
}

type EquationRequest struct {
	Set       string      `json:"set" binding:"required"`
	Equations [][]float64 `json:"equations" binding:"required,min=1,max=4,dive,len=4"`
	Name      string      `json:"name" binding:"max=100"`
}

type EquationResponse struct {
	Set         string   `json:"set"`
	Matches     []bool   `json:"matches"`
	Independent *bool    `json:"independent,omitempty"`
	Result      string   `json:"result"`
	Messages    []string `json:"messages"`
}

type SetResponse struct {
	ID      int               `json:"id"`
	Circuit kirchhoff.Circuit `json:"circuit"`
	Diagram string            `json:"diagram,omitempty"`
}

// FormRequest is the submitted form. Equation rows repeat their field name
// once per coefficient.
type FormRequest struct {
	Action string    `form:"action" binding:"required,oneof=answers equations"`
	Set    int       `form:"set" binding:"required,min=1,max=10"`
	Name   string    `form:"name" binding:"max=100"`
	I1     float64   `form:"i1"`
	I2     float64   `form:"i2"`
	I3     float64   `form:"i3"`
	Eq1    []float64 `form:"eq1" binding:"omitempty,len=4"`
	Eq2    []float64 `form:"eq2" binding:"omitempty,len=4"`
	Eq3    []float64 `form:"eq3" binding:"omitempty,len=4"`
}

func (f FormRequest) Equations() []kirchhoff.Equation {
	return toEquations([][]float64{f.Eq1, f.Eq2, f.Eq3})
}

func toEquations(rows [][]float64) []kirchhoff.Equation {
	eqs := make([]kirchhoff.Equation, len(rows))
	for i, row := range rows {
		copy(eqs[i][:], row)
	}
	return eqs
}
