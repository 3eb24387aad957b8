package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wallet-mapper/internal/handler/request"
	"wallet-mapper/internal/handler/response"
	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/address"
	"wallet-mapper/pkg/errno"
	"wallet-mapper/pkg/logger"
	"wallet-mapper/pkg/validator"
)

// TransactionMapper 由 mapper.TransactionMapper 实现
type TransactionMapper interface {
	ToModel(ctx context.Context, req model.TransferSendRequest) (*model.Transaction, error)
	ToImportanceModel(ctx context.Context, req model.TransferImportanceRequest, mode model.ImportanceTransferMode) (*model.Transaction, error)
	ToViewModel(ctx context.Context, req model.PartialTransferInformationRequest) model.PartialTransferInformationViewModel
}

// EventPublisher 由 mq.EventPublisher 实现
type EventPublisher interface {
	PublishPrepared(ctx context.Context, tx *model.Transaction) error
}

type TransactionHandler struct {
	mapper    TransactionMapper
	events    EventPublisher
	addresses *address.Generator
}

func NewTransactionHandler(mapper TransactionMapper, events EventPublisher, addresses *address.Generator) *TransactionHandler {
	return &TransactionHandler{mapper: mapper, events: events, addresses: addresses}
}

// PrepareTransfer 构造转账交易
// @Summary 构造转账交易
// @Description 解锁钱包, 组装带时间戳、有效期和附言的转账交易 (不签名, 不广播)
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body request.TransferPrepareRequest true "Transfer Request"
// @Success 200 {object} response.Response{data=response.TransactionResponse}
// @Router /api/v1/transfer/prepare [post]
func (h *TransactionHandler) PrepareTransfer(c *gin.Context) {
	var req request.TransferPrepareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.validateAddresses(req.Signer, req.Recipient); err != nil {
		response.Error(c, err)
		return
	}

	// binding 已校验过格式
	amount, _ := model.ParseAmount(req.Amount)
	fee, _ := model.ParseAmount(req.Fee)

	tx, err := h.mapper.ToModel(c.Request.Context(), model.TransferSendRequest{
		WalletName:           model.WalletName(req.Wallet),
		SignerAddress:        model.Address(req.Signer),
		RecipientAddress:     model.Address(req.Recipient),
		Amount:               amount,
		Message:              req.Message,
		ShouldEncryptMessage: req.Encrypt,
		DeadlineHours:        req.DeadlineHours,
		Password:             toPassword(req.Password),
		Fee:                  fee,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	h.publish(c.Request.Context(), tx)
	response.Success(c, response.NewTransactionResponse(tx))
}

// ActivateImportance 委托收获权给远程账户
// @Summary 激活远程收获
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body request.ImportanceTransferRequest true "Importance Transfer Request"
// @Success 200 {object} response.Response{data=response.TransactionResponse}
// @Router /api/v1/importance-transfer/activate [post]
func (h *TransactionHandler) ActivateImportance(c *gin.Context) {
	h.importanceTransfer(c, model.ImportanceTransferModeActivate)
}

// DeactivateImportance 撤销远程收获
// @Summary 撤销远程收获
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body request.ImportanceTransferRequest true "Importance Transfer Request"
// @Success 200 {object} response.Response{data=response.TransactionResponse}
// @Router /api/v1/importance-transfer/deactivate [post]
func (h *TransactionHandler) DeactivateImportance(c *gin.Context) {
	h.importanceTransfer(c, model.ImportanceTransferModeDeactivate)
}

func (h *TransactionHandler) importanceTransfer(c *gin.Context, mode model.ImportanceTransferMode) {
	var req request.ImportanceTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if err := h.validateAddresses(req.Signer); err != nil {
		response.Error(c, err)
		return
	}

	tx, err := h.mapper.ToImportanceModel(c.Request.Context(), model.TransferImportanceRequest{
		SignerAddress: model.Address(req.Signer),
		WalletName:    model.WalletName(req.Wallet),
		Password:      toPassword(req.Password),
		DeadlineHours: req.DeadlineHours,
		Mode:          mode,
	}, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.publish(c.Request.Context(), tx)
	response.Success(c, response.NewTransactionResponse(tx))
}

// ValidateTransfer 估算手续费以及是否支持加密附言
// @Summary 估算手续费
// @Description 不访问钱包, 所有字段可选
// @Tags Transaction
// @Accept json
// @Produce json
// @Param request body request.TransferValidateRequest true "Partial Transfer Information"
// @Success 200 {object} response.Response{data=response.ViewModelResponse}
// @Router /api/v1/transfer/validate [post]
func (h *TransactionHandler) ValidateTransfer(c *gin.Context) {
	var req request.TransferValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	partial := model.PartialTransferInformationRequest{
		Message:                  req.Message,
		IsSecureMessageRequested: req.Encrypt,
	}
	if req.Recipient != nil && *req.Recipient != "" {
		if err := h.validateAddresses(*req.Recipient); err != nil {
			response.Error(c, err)
			return
		}
		addr := model.Address(*req.Recipient)
		partial.RecipientAddress = &addr
	}
	if req.Amount != nil {
		amount, _ := model.ParseAmount(*req.Amount)
		partial.Amount = &amount
	}

	vm := h.mapper.ToViewModel(c.Request.Context(), partial)
	response.Success(c, response.NewViewModelResponse(vm))
}

func (h *TransactionHandler) validateAddresses(addrs ...string) error {
	for _, a := range addrs {
		if err := h.addresses.Validate(a); err != nil {
			return errno.ErrValidation.WithMessage(err.Error())
		}
	}
	return nil
}

// publish 审计事件发送失败不影响本次请求
func (h *TransactionHandler) publish(ctx context.Context, tx *model.Transaction) {
	if h.events == nil {
		return
	}
	if err := h.events.PublishPrepared(ctx, tx); err != nil {
		logger.Warn("publish transaction event failed", zap.String("kind", tx.Kind.String()), zap.Error(err))
	}
}

func toPassword(p *string) *model.WalletPassword {
	if p == nil {
		return nil
	}
	pw := model.WalletPassword(*p)
	return &pw
}

// bindError JSON 解析失败返回 10002, 字段校验失败返回 10003
func bindError(c *gin.Context, err error) {
	if validator.IsValidationError(err) {
		response.Error(c, errno.ErrValidation.WithMessage(validator.GetErrorMsg(err)))
		return
	}
	response.Error(c, errno.ErrBind)
}
