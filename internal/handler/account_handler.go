package handler

import (
	"context"
	"encoding/hex"

	"github.com/gin-gonic/gin"

	"wallet-mapper/internal/handler/request"
	"wallet-mapper/internal/handler/response"
	"wallet-mapper/internal/model"
	"wallet-mapper/pkg/address"
	"wallet-mapper/pkg/crypto_util"
	"wallet-mapper/pkg/errno"
)

// AccountRecorder 由 account.Lookup 实现
type AccountRecorder interface {
	Remember(ctx context.Context, acc model.Account) error
}

type AccountHandler struct {
	accounts  AccountRecorder
	addresses *address.Generator
}

func NewAccountHandler(accounts AccountRecorder, addresses *address.Generator) *AccountHandler {
	return &AccountHandler{accounts: accounts, addresses: addresses}
}

// RememberPublicKey 登记账户公钥, 之后可以向该账户发送加密附言
// @Summary 登记账户公钥
// @Tags Account
// @Accept json
// @Produce json
// @Param request body request.RememberAccountRequest true "Account"
// @Success 200 {object} response.Response
// @Router /api/v1/account/public-key [post]
func (h *AccountHandler) RememberPublicKey(c *gin.Context) {
	var req request.RememberAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	raw, _ := hex.DecodeString(req.PublicKey)
	pub, err := crypto_util.ParsePublicKey(raw)
	if err != nil {
		response.Error(c, errno.ErrValidation.WithMessage("公钥格式不正确"))
		return
	}

	// 地址必须由该公钥推导出来
	derived, err := h.addresses.PubKeyToAddress(pub.SerializeCompressed())
	if err != nil || derived != req.Address {
		response.Error(c, errno.ErrValidation.WithMessage("地址与公钥不匹配"))
		return
	}

	acc := model.Account{Address: model.Address(req.Address), KeyPair: model.NewPublicKeyPair(pub)}
	if err := h.accounts.Remember(c.Request.Context(), acc); err != nil {
		response.Error(c, errno.ErrDatabase.WithMessage(err.Error()))
		return
	}
	response.Success(c, gin.H{"address": req.Address})
}
