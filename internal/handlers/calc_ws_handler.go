package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"github.com/MrSir504/Navigate-Tools-2.1/internal/engine"
	"github.com/MrSir504/Navigate-Tools-2.1/internal/taxconfig"
)

var calcUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	wsWriteWait = 10 * time.Second
	wsPongWait  = 60 * time.Second
)

// calcRequest is one inbound recalculation frame. Seq is echoed back so the
// frontend can discard stale responses while the user is still typing.
type calcRequest struct {
	Seq        int             `json:"seq"`
	Calculator string          `json:"calculator"`
	TaxYear    string          `json:"taxYear"`
	Payload    json.RawMessage `json:"payload"`
}

type calcResponse struct {
	Seq    int         `json:"seq"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Field  string      `json:"field,omitempty"`
}

// CalcWSHandler upgrades the connection and serves a per-connection
// recalculation loop so sliders and input fields get results without an HTTP
// round trip per keystroke.
func CalcWSHandler(c *gin.Context) {
	conn, err := calcUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Error("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsPongWait))
		return nil
	})

	for {
		var req calcRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("WebSocket read failed", "error", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsPongWait))

		resp := dispatchCalc(req)
		conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(resp); err != nil {
			slog.Warn("WebSocket write failed", "error", err)
			return
		}
	}
}

func dispatchCalc(req calcRequest) calcResponse {
	resp := calcResponse{Seq: req.Seq}

	run := func(result interface{}, err error) {
		if err != nil {
			if input, ok := err.(*engine.InvalidInputError); ok {
				resp.Error = input.Reason
				resp.Field = input.Field
			} else {
				resp.Error = err.Error()
			}
			return
		}
		resp.Result = result
	}

	table, err := taxconfig.Table(req.TaxYear)
	if err != nil {
		resp.Error = "tax data unavailable"
		return resp
	}

	switch req.Calculator {
	case "salary":
		var in engine.SalaryInput
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.CalculateSalary(in, table)
		run(result, err)
	case "ra":
		var in raInput
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.RADeduction(in.AnnualIncome, in.RAContribution, table)
		run(result, err)
	case "retirement":
		var in engine.RetirementInput
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.ProjectRetirement(in, table)
		run(result, err)
	case "estate":
		var in engine.EstateInput
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.EstateLiquidity(in, table)
		run(result, err)
	case "cover":
		var in engine.CoverInput
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.CoverGap(in, table)
		run(result, err)
	case "risk":
		var in riskAnswers
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.ScoreRiskProfile(in.Answers)
		run(result, err)
	case "budget":
		var in budgetInput
		if err := json.Unmarshal(req.Payload, &in); err != nil {
			resp.Error = "invalid payload"
			return resp
		}
		result, err := engine.CalculateBudget(in.MonthlyIncome, in.Expenses)
		run(result, err)
	default:
		resp.Error = "unknown calculator: " + req.Calculator
	}

	return resp
}
