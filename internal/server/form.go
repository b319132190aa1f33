package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kirchhoff"
)

type formResult struct {
	Level string // success, warning or error
	Lines []string
}

type formPage struct {
	Variant          kirchhoff.Variant
	Sets             []string
	Set              int
	Name             string
	Diagram          string
	Circuit          kirchhoff.Circuit
	EquationChecking bool
	Labels           []string
	Currents         kirchhoff.Currents
	Equations        []kirchhoff.Equation

	CurrentsResult  *formResult
	EquationsResult *formResult
	Error           string
}

func (s *Server) newFormPage(set int) formPage {
	page := formPage{
		Variant:          s.cfg.Variant,
		Sets:             s.repo.IDs(),
		Set:              set,
		EquationChecking: s.cfg.EquationChecking,
		Labels:           []string{"I1", "I2", "I3", "Constant"},
		Equations:        make([]kirchhoff.Equation, 3),
	}
	if ps, err := s.repo.Lookup(strconv.Itoa(set)); err == nil {
		page.Circuit = ps.Circuit
		page.Diagram = s.cfg.DiagramFor(set)
	}
	return page
}

func (s *Server) ShowForm(c *gin.Context) {
	set, err := strconv.Atoi(c.DefaultQuery("set", "1"))
	if err != nil {
		set = 1
	}

	page := s.newFormPage(set)
	if _, err := s.repo.Lookup(strconv.Itoa(set)); err != nil {
		page.Error = kirchhoff.InvalidSetMessage
	}
	c.HTML(http.StatusOK, "form.html", page)
}

func (s *Server) SubmitForm(c *gin.Context) {
	var req FormRequest
	if err := c.ShouldBind(&req); err != nil {
		page := s.newFormPage(req.Set)
		page.Error = "Please check your inputs: " + err.Error()
		c.HTML(http.StatusBadRequest, "form.html", page)
		return
	}

	setID := strconv.Itoa(req.Set)
	page := s.newFormPage(req.Set)
	page.Name = req.Name
	page.Currents = kirchhoff.Currents{req.I1, req.I2, req.I3}
	page.Equations = req.Equations()

	switch req.Action {
	case "answers":
		verdict, err := s.checkAnswers(setID, page.Currents, req.Name)
		if err != nil {
			page.CurrentsResult = &formResult{Level: "warning", Lines: []string{kirchhoff.InvalidSetMessage}}
			break
		}
		page.CurrentsResult = &formResult{Level: levelFor(verdict.Outcome), Lines: strings.Split(verdict.Message(), "\n")}

	case "equations":
		if !s.cfg.EquationChecking {
			page.Error = "Equation checking is not available."
			break
		}
		report, err := s.checkEquations(setID, page.Equations, req.Name)
		if err != nil {
			page.EquationsResult = &formResult{Level: "warning", Lines: []string{kirchhoff.InvalidSetMessage}}
			break
		}
		page.EquationsResult = &formResult{Level: levelFor(report.Outcome()), Lines: report.Messages()}
	}

	c.HTML(http.StatusOK, "form.html", page)
}

func levelFor(o kirchhoff.Outcome) string {
	switch o {
	case kirchhoff.Exact:
		return "success"
	case kirchhoff.WithinTolerance:
		return "warning"
	default:
		return "error"
	}
}

const formTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PHY 132 - Kirchhoff Current Checker</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; padding: 0 1rem; }
fieldset { margin-bottom: 1.5rem; }
input[type=number] { width: 7rem; }
.success { color: #1b5e20; } .warning { color: #8a6d00; } .error { color: #b71c1c; }
.result { white-space: pre-line; font-weight: bold; }
</style>
</head>
<body>
<h1>PHY 132 - Kirchhoff Current Checker</h1>
<p>Welcome to the Kirchhoff Current Checker for PHY 132 at Eastern Kentucky University.</p>

{{if .Error}}<p class="error">{{.Error}}</p>{{end}}

<form method="get" action="/">
<label>Problem set
<select name="set" onchange="this.form.submit()">
{{range .Sets}}<option value="{{.}}" {{if eq . (printf "%d" $.Set)}}selected{{end}}>{{.}}</option>{{end}}
</select></label>
<noscript><button type="submit">Show</button></noscript>
</form>

{{if .Diagram}}<figure><img src="{{.Diagram}}" alt="Problem Set {{.Set}} Circuit Diagram" width="480"><figcaption>Problem Set {{.Set}} Circuit Diagram</figcaption></figure>{{end}}
<p>V1 = {{.Circuit.V1}} V, V2 = {{.Circuit.V2}} V, R1 = {{.Circuit.R1}} &Omega;, R2 = {{.Circuit.R2}} &Omega;, R3 = {{.Circuit.R3}} &Omega;</p>

<form method="post" action="/">
<input type="hidden" name="set" value="{{.Set}}">
<p><label>Optional: your name <input type="text" name="name" value="{{.Name}}" maxlength="100"></label></p>

{{if .EquationChecking}}
<fieldset>
<legend>Kirchhoff equation coefficients (A&middot;I1 + B&middot;I2 + C&middot;I3 + D = 0)</legend>
{{range $i, $eq := .Equations}}
<p>Equation {{inc $i}}:
{{range $j, $v := $eq}}<label>{{index $.Labels $j}} <input type="number" step="any" name="eq{{inc $i}}" value="{{$v}}"></label> {{end}}
</p>
{{end}}
<button type="submit" name="action" value="equations">Check Kirchhoff Equations</button>
{{with .EquationsResult}}<p class="result {{.Level}}">{{range .Lines}}{{.}}
{{end}}</p>{{end}}
</fieldset>
{{end}}

<fieldset>
<legend>Calculated currents (mA)</legend>
<label>I1 <input type="number" step="any" name="i1" value="{{index .Currents 0}}"></label>
<label>I2 <input type="number" step="any" name="i2" value="{{index .Currents 1}}"></label>
<label>I3 <input type="number" step="any" name="i3" value="{{index .Currents 2}}"></label>
<button type="submit" name="action" value="answers">Check Answers</button>
{{with .CurrentsResult}}<p class="result {{.Level}}">{{range .Lines}}{{.}}
{{end}}</p>{{end}}
</fieldset>
</form>

<details>
<summary>Kirchhoff's Rules Recap</summary>
<p><b>Kirchhoff's Voltage Law (KVL)</b>: The sum of all voltages around a closed loop is zero.</p>
<p><b>Kirchhoff's Current Law (KCL)</b>: The sum of currents entering a junction equals the sum of currents leaving the junction.</p>
<p>Use these rules to solve for the currents in each resistor.</p>
</details>

<hr>
<footer>This tool was developed for <b>PHY 132 - College Physics II</b> at Eastern Kentucky University.</footer>
</body>
</html>
`
