package http

import (
	"errors"
	gohttp "net/http"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"

	"github.com/hxuan190/split-engine/internal/common"
	"github.com/hxuan190/split-engine/internal/http/httputil"
	"github.com/hxuan190/split-engine/internal/services"
	"github.com/hxuan190/split-engine/internal/splitter"
)

// maxBatchBodyBytes bounds the batch request body; 1000 amounts of 78 digits fit comfortably.
const maxBatchBodyBytes = 1 << 20

type SplitHandler struct {
	splitSvc *services.SplitService
}

func NewSplitHandler(splitSvc *services.SplitService) *SplitHandler {
	return &SplitHandler{splitSvc: splitSvc}
}

func (h *SplitHandler) SetRoutes(pub *gin.RouterGroup, private *gin.RouterGroup, admin *gin.RouterGroup) {
	pub.GET("/:amount", h.getSplit)
	pub.GET("/:amount/thirty", h.getThirtyPercent)
	pub.GET("/:amount/ten", h.getTenPercent)
	pub.GET("/:amount/divisibility", h.getDivisibility)
	pub.POST("/batch", h.postBatch)
}

func (h *SplitHandler) Root() string {
	return "/split"
}

// SplitResponse is the 30/10/60 partition of an amount.
// All amounts are decimal strings; they can exceed the range of a JSON number.
type SplitResponse struct {
	// Input amount echoed back in decimal
	Amount string `json:"amount" example:"15"`

	// floor(amount * 3 / 10)
	Thirty string `json:"thirty" example:"4"`

	// floor(amount / 10)
	Ten string `json:"ten" example:"1"`

	// amount - thirty - ten
	Remaining string `json:"remaining" example:"10"`

	// Units lost to truncation compared with a single floor(amount * 4 / 10); 0 or 1
	TotalRemainder string `json:"totalRemainder" example:"1"`
}

// PercentResponse is a single share calculation
type PercentResponse struct {
	Amount string `json:"amount" example:"7"`

	// Truncated share
	Share string `json:"share" example:"2"`

	// Diagnostic only, share + remainder is not the amount in general
	Remainder string `json:"remainder" example:"1"`
}

// DivisibilityResponse reports amount mod 10
type DivisibilityResponse struct {
	Amount          string `json:"amount" example:"123"`
	DivisibleByTen  bool   `json:"divisibleByTen" example:"false"`
	RemainderModTen uint64 `json:"remainderModTen" example:"3"`
}

// BatchSplitRequest carries decimal or 0x-hex amounts
type BatchSplitRequest struct {
	Amounts []string `json:"amounts" example:"10,15,0xff"`
}

type BatchSplitResponse struct {
	Results []SplitResponse `json:"results"`
}

// @Summary Split an amount 30/10/60
// @Description Partition a 256-bit unsigned amount into floor(30%), floor(10%) and the remainder.
// @Description thirty + ten + remaining always equals the amount.
// @Description
// @Description **Amount Format:**
// @Description - Decimal ("1000000000000000000") or 0x-prefixed hex ("0xde0b6b3a7640000")
// @Description - Range 0 to 2^256-1
// @Tags split
// @Produce json
// @Param amount path string true "Amount, decimal or 0x hex" example("15")
// @Success 200 {object} SplitResponse "Split of the amount"
// @Failure 400 {object} httputil.Response "Invalid amount (empty, signed, fractional or above 2^256-1)"
// @Failure 500 {object} httputil.Response "Split parts did not sum to the amount"
// @Router /api/v1/split/{amount} [get]
func (h *SplitHandler) getSplit(c *gin.Context) {
	amount, ok := parseAmountParam(c)
	if !ok {
		return
	}

	res, err := h.splitSvc.Split(amount)
	if err != nil {
		httputil.HandleError(c, toHttpError(err))
		return
	}
	httputil.Success(c, newSplitResponse(amount, res))
}

// @Summary Get the 30% share
// @Description floor(amount * 3 / 10), computed without overflow for any 256-bit amount.
// @Description The remainder is amount - floor(share * 10 / 3) and is informational only.
// @Tags split
// @Produce json
// @Param amount path string true "Amount, decimal or 0x hex" example("7")
// @Success 200 {object} PercentResponse "30% share"
// @Failure 400 {object} httputil.Response "Invalid amount (empty, signed, fractional or above 2^256-1)"
// @Router /api/v1/split/{amount}/thirty [get]
func (h *SplitHandler) getThirtyPercent(c *gin.Context) {
	amount, ok := parseAmountParam(c)
	if !ok {
		return
	}
	httputil.Success(c, newPercentResponse(amount, h.splitSvc.ThirtyPercent(amount)))
}

// @Summary Get the 10% share
// @Description floor(amount / 10); the remainder is exactly amount mod 10.
// @Tags split
// @Produce json
// @Param amount path string true "Amount, decimal or 0x hex" example("27")
// @Success 200 {object} PercentResponse "10% share"
// @Failure 400 {object} httputil.Response "Invalid amount (empty, signed, fractional or above 2^256-1)"
// @Router /api/v1/split/{amount}/ten [get]
func (h *SplitHandler) getTenPercent(c *gin.Context) {
	amount, ok := parseAmountParam(c)
	if !ok {
		return
	}
	httputil.Success(c, newPercentResponse(amount, h.splitSvc.TenPercent(amount)))
}

// @Summary Check divisibility by ten
// @Tags split
// @Produce json
// @Param amount path string true "Amount, decimal or 0x hex" example("123")
// @Success 200 {object} DivisibilityResponse "amount mod 10"
// @Failure 400 {object} httputil.Response "Invalid amount (empty, signed, fractional or above 2^256-1)"
// @Router /api/v1/split/{amount}/divisibility [get]
func (h *SplitHandler) getDivisibility(c *gin.Context) {
	amount, ok := parseAmountParam(c)
	if !ok {
		return
	}

	divisible, rem := h.splitSvc.Divisibility(amount)
	httputil.Success(c, DivisibilityResponse{
		Amount:          amount.Dec(),
		DivisibleByTen:  divisible,
		RemainderModTen: rem.Uint64(),
	})
}

// @Summary Split a batch of amounts
// @Description Split up to SPLIT_BATCH_MAX_SIZE amounts in one request. Results keep the input order.
// @Tags split
// @Accept json
// @Produce json
// @Param request body BatchSplitRequest true "Amounts to split"
// @Success 200 {object} BatchSplitResponse "One split per amount"
// @Failure 400 {object} httputil.Response "Malformed body, empty or oversized batch, or an invalid amount"
// @Failure 500 {object} httputil.Response "Split parts did not sum to the amount"
// @Router /api/v1/split/batch [post]
func (h *SplitHandler) postBatch(c *gin.Context) {
	c.Request.Body = gohttp.MaxBytesReader(c.Writer, c.Request.Body, maxBatchBodyBytes)
	body, err := c.GetRawData()
	if err != nil {
		httputil.HandleError(c, common.HTTPErrorBadRequest("failed to read request body"))
		return
	}

	var req BatchSplitRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		httputil.HandleError(c, common.HTTPErrorBadRequest("invalid JSON body"))
		return
	}

	amounts := make([]*uint256.Int, len(req.Amounts))
	for i, s := range req.Amounts {
		amount, err := splitter.ParseAmount(s)
		if err != nil {
			httputil.HandleError(c, common.HTTPErrorBadRequest(err.Error()).WithCause(err))
			return
		}
		amounts[i] = amount
	}

	results, err := h.splitSvc.SplitBatch(c.Request.Context(), amounts)
	if err != nil {
		httputil.HandleError(c, toHttpError(err))
		return
	}

	resp := BatchSplitResponse{Results: make([]SplitResponse, len(results))}
	for i, res := range results {
		resp.Results[i] = newSplitResponse(amounts[i], res)
	}
	httputil.Success(c, resp)
}

func parseAmountParam(c *gin.Context) (*uint256.Int, bool) {
	amount, err := splitter.ParseAmount(c.Param("amount"))
	if err != nil {
		httputil.HandleError(c, common.HTTPErrorBadRequest(err.Error()).WithCause(err))
		return nil, false
	}
	return amount, true
}

func toHttpError(err error) *common.HttpError {
	switch {
	case errors.Is(err, services.ErrEmptyBatch),
		errors.Is(err, services.ErrBatchTooLarge),
		errors.Is(err, splitter.ErrInvalidAmount),
		errors.Is(err, splitter.ErrEmptyAmount),
		errors.Is(err, splitter.ErrAmountOverflow):
		return common.HTTPErrorBadRequest(err.Error()).WithCause(err)
	default:
		return common.HTTPErrorInternalError("").WithCause(err)
	}
}

func newSplitResponse(amount *uint256.Int, res splitter.SplitResult) SplitResponse {
	return SplitResponse{
		Amount:         amount.Dec(),
		Thirty:         res.Thirty.Dec(),
		Ten:            res.Ten.Dec(),
		Remaining:      res.Remaining.Dec(),
		TotalRemainder: res.TotalRemainder.Dec(),
	}
}

func newPercentResponse(amount *uint256.Int, res splitter.PercentResult) PercentResponse {
	return PercentResponse{
		Amount:    amount.Dec(),
		Share:     res.Share.Dec(),
		Remainder: res.Remainder.Dec(),
	}
}
