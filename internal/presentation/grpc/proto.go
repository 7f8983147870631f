package grpc

// proto.go defines the gRPC server interface derived from
// finora/liability/v1/liability.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/finora/api/gen/go/finora/liability/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/finora/liability-service/internal/application/dto"
)

// ---------------------------------------------------------------------------
// Messages. Money travels as decimal strings, dates as RFC 3339.
// ---------------------------------------------------------------------------

type CreateLiabilityRequest struct {
	UserID             string `json:"user_id"`
	Name               string `json:"name"`
	Currency           string `json:"currency"`
	Amount             string `json:"amount"`
	AnnualRatePct      string `json:"annual_rate_pct"`
	InterestType       string `json:"interest_type"`
	PeriodicalPayment  string `json:"periodical_payment"`
	StartDate          string `json:"start_date"`
	TargetedPayoffDate string `json:"targeted_payoff_date"`
}

type CreateLiabilityResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type GetLiabilityRequest struct {
	LiabilityID string `json:"liability_id"`
}

type GetLiabilityResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type ListLiabilitiesRequest struct {
	UserID string `json:"user_id"`
}

type ListLiabilitiesResponse struct {
	Liabilities []dto.LiabilityResponse `json:"liabilities"`
}

type PreviewImpactRequest struct {
	LiabilityID    string `json:"liability_id"`
	ProposedField  string `json:"proposed_field"`
	Amount         string `json:"amount"`
	Date           string `json:"date"`
	ConstraintMode string `json:"constraint_mode"`
	CustomPayment  string `json:"custom_payment"`
}

type PreviewImpactResponse struct {
	Preview dto.ImpactPreviewResponse `json:"preview"`
}

type RecalculateScheduleRequest struct {
	LiabilityID string `json:"liability_id"`
	NewPayment  string `json:"new_payment"`
	NewRatePct  string `json:"new_rate_pct"`
	NewEndDate  string `json:"new_end_date"`
}

type RecalculateScheduleResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type SkipInstallmentRequest struct {
	LiabilityID   string `json:"liability_id"`
	InstallmentID string `json:"installment_id"`
	Policy        string `json:"policy"`
}

type SkipInstallmentResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type ChangeInstallmentAmountRequest struct {
	LiabilityID   string `json:"liability_id"`
	InstallmentID string `json:"installment_id"`
	NewAmount     string `json:"new_amount"`
	Policy        string `json:"policy"`
}

type ChangeInstallmentAmountResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type ChangeInstallmentDateRequest struct {
	LiabilityID   string `json:"liability_id"`
	InstallmentID string `json:"installment_id"`
	NewDate       string `json:"new_date"`
}

type ChangeInstallmentDateResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type MarkInstallmentPaidRequest struct {
	LiabilityID   string `json:"liability_id"`
	InstallmentID string `json:"installment_id"`
}

type MarkInstallmentPaidResponse struct {
	Liability dto.LiabilityResponse `json:"liability"`
}

type SettlementAdjustment struct {
	Type      string `json:"type"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	AccountID string `json:"account_id"`
	Note      string `json:"note"`
}

type GetSettlementStatusRequest struct {
	LiabilityID string                 `json:"liability_id"`
	Adjustments []SettlementAdjustment `json:"adjustments"`
}

type GetSettlementStatusResponse struct {
	Status dto.SettlementStatusResponse `json:"status"`
}

type ExecuteSettlementRequest struct {
	LiabilityID  string                 `json:"liability_id"`
	Adjustments  []SettlementAdjustment `json:"adjustments"`
	FinalAction  string                 `json:"final_action"`
	Confirmation string                 `json:"confirmation"`
}

type ExecuteSettlementResponse struct {
	Result dto.ExecuteSettlementResponse `json:"result"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

// LiabilityServiceServer is the server API for LiabilityService.
// It mirrors the proto-generated interface from finora.liability.v1.LiabilityService.
type LiabilityServiceServer interface {
	CreateLiability(context.Context, *CreateLiabilityRequest) (*CreateLiabilityResponse, error)
	GetLiability(context.Context, *GetLiabilityRequest) (*GetLiabilityResponse, error)
	ListLiabilities(context.Context, *ListLiabilitiesRequest) (*ListLiabilitiesResponse, error)
	PreviewImpact(context.Context, *PreviewImpactRequest) (*PreviewImpactResponse, error)
	RecalculateSchedule(context.Context, *RecalculateScheduleRequest) (*RecalculateScheduleResponse, error)
	SkipInstallment(context.Context, *SkipInstallmentRequest) (*SkipInstallmentResponse, error)
	ChangeInstallmentAmount(context.Context, *ChangeInstallmentAmountRequest) (*ChangeInstallmentAmountResponse, error)
	ChangeInstallmentDate(context.Context, *ChangeInstallmentDateRequest) (*ChangeInstallmentDateResponse, error)
	MarkInstallmentPaid(context.Context, *MarkInstallmentPaidRequest) (*MarkInstallmentPaidResponse, error)
	GetSettlementStatus(context.Context, *GetSettlementStatusRequest) (*GetSettlementStatusResponse, error)
	ExecuteSettlement(context.Context, *ExecuteSettlementRequest) (*ExecuteSettlementResponse, error)
	mustEmbedUnimplementedLiabilityServiceServer()
}

// UnimplementedLiabilityServiceServer provides forward-compatible default implementations.
type UnimplementedLiabilityServiceServer struct{}

func (UnimplementedLiabilityServiceServer) CreateLiability(context.Context, *CreateLiabilityRequest) (*CreateLiabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLiability not implemented")
}
func (UnimplementedLiabilityServiceServer) GetLiability(context.Context, *GetLiabilityRequest) (*GetLiabilityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLiability not implemented")
}
func (UnimplementedLiabilityServiceServer) ListLiabilities(context.Context, *ListLiabilitiesRequest) (*ListLiabilitiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLiabilities not implemented")
}
func (UnimplementedLiabilityServiceServer) PreviewImpact(context.Context, *PreviewImpactRequest) (*PreviewImpactResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PreviewImpact not implemented")
}
func (UnimplementedLiabilityServiceServer) RecalculateSchedule(context.Context, *RecalculateScheduleRequest) (*RecalculateScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecalculateSchedule not implemented")
}
func (UnimplementedLiabilityServiceServer) SkipInstallment(context.Context, *SkipInstallmentRequest) (*SkipInstallmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SkipInstallment not implemented")
}
func (UnimplementedLiabilityServiceServer) ChangeInstallmentAmount(context.Context, *ChangeInstallmentAmountRequest) (*ChangeInstallmentAmountResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeInstallmentAmount not implemented")
}
func (UnimplementedLiabilityServiceServer) ChangeInstallmentDate(context.Context, *ChangeInstallmentDateRequest) (*ChangeInstallmentDateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ChangeInstallmentDate not implemented")
}
func (UnimplementedLiabilityServiceServer) MarkInstallmentPaid(context.Context, *MarkInstallmentPaidRequest) (*MarkInstallmentPaidResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkInstallmentPaid not implemented")
}
func (UnimplementedLiabilityServiceServer) GetSettlementStatus(context.Context, *GetSettlementStatusRequest) (*GetSettlementStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSettlementStatus not implemented")
}
func (UnimplementedLiabilityServiceServer) ExecuteSettlement(context.Context, *ExecuteSettlementRequest) (*ExecuteSettlementResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExecuteSettlement not implemented")
}
func (UnimplementedLiabilityServiceServer) mustEmbedUnimplementedLiabilityServiceServer() {}

// RegisterLiabilityServiceServer registers the LiabilityServiceServer with the gRPC server.
func RegisterLiabilityServiceServer(s *grpclib.Server, srv LiabilityServiceServer) {
	s.RegisterService(&_LiabilityService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LiabilityService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "finora.liability.v1.LiabilityService",
	HandlerType: (*LiabilityServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLiability", Handler: _LiabilityService_CreateLiability_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetLiability", Handler: _LiabilityService_GetLiability_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "ListLiabilities", Handler: _LiabilityService_ListLiabilities_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "PreviewImpact", Handler: _LiabilityService_PreviewImpact_Handler},                     //nolint:revive // gRPC handler registration
		{MethodName: "RecalculateSchedule", Handler: _LiabilityService_RecalculateSchedule_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "SkipInstallment", Handler: _LiabilityService_SkipInstallment_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "ChangeInstallmentAmount", Handler: _LiabilityService_ChangeInstallmentAmount_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "ChangeInstallmentDate", Handler: _LiabilityService_ChangeInstallmentDate_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "MarkInstallmentPaid", Handler: _LiabilityService_MarkInstallmentPaid_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "GetSettlementStatus", Handler: _LiabilityService_GetSettlementStatus_Handler},         //nolint:revive // gRPC handler registration
		{MethodName: "ExecuteSettlement", Handler: _LiabilityService_ExecuteSettlement_Handler},             //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_CreateLiability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLiabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).CreateLiability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/CreateLiability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).CreateLiability(ctx, req.(*CreateLiabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_GetLiability_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLiabilityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).GetLiability(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/GetLiability",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).GetLiability(ctx, req.(*GetLiabilityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_ListLiabilities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLiabilitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).ListLiabilities(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/ListLiabilities",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).ListLiabilities(ctx, req.(*ListLiabilitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_PreviewImpact_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(PreviewImpactRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).PreviewImpact(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/PreviewImpact",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).PreviewImpact(ctx, req.(*PreviewImpactRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_RecalculateSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecalculateScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).RecalculateSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/RecalculateSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).RecalculateSchedule(ctx, req.(*RecalculateScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_SkipInstallment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(SkipInstallmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).SkipInstallment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/SkipInstallment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).SkipInstallment(ctx, req.(*SkipInstallmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_ChangeInstallmentAmount_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeInstallmentAmountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).ChangeInstallmentAmount(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/ChangeInstallmentAmount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).ChangeInstallmentAmount(ctx, req.(*ChangeInstallmentAmountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_ChangeInstallmentDate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ChangeInstallmentDateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).ChangeInstallmentDate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/ChangeInstallmentDate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).ChangeInstallmentDate(ctx, req.(*ChangeInstallmentDateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_MarkInstallmentPaid_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MarkInstallmentPaidRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).MarkInstallmentPaid(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/MarkInstallmentPaid",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).MarkInstallmentPaid(ctx, req.(*MarkInstallmentPaidRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_GetSettlementStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetSettlementStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).GetSettlementStatus(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/GetSettlementStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).GetSettlementStatus(ctx, req.(*GetSettlementStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LiabilityService_ExecuteSettlement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExecuteSettlementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LiabilityServiceServer).ExecuteSettlement(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/finora.liability.v1.LiabilityService/ExecuteSettlement",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LiabilityServiceServer).ExecuteSettlement(ctx, req.(*ExecuteSettlementRequest))
	}
	return interceptor(ctx, in, info, handler)
}
