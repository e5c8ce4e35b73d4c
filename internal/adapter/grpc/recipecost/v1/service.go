package recipecostv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully-qualified gRPC service name
const ServiceName = "recipecost.v1.RecipeCostService"

// Full method names of the RecipeCostService RPCs
const (
	RecipeCostService_RegisterIngredient_FullMethodName   = "/" + ServiceName + "/RegisterIngredient"
	RecipeCostService_UpdateIngredient_FullMethodName     = "/" + ServiceName + "/UpdateIngredient"
	RecipeCostService_GetIngredient_FullMethodName        = "/" + ServiceName + "/GetIngredient"
	RecipeCostService_DeleteIngredient_FullMethodName     = "/" + ServiceName + "/DeleteIngredient"
	RecipeCostService_ListIngredients_FullMethodName      = "/" + ServiceName + "/ListIngredients"
	RecipeCostService_RegisterExpense_FullMethodName      = "/" + ServiceName + "/RegisterExpense"
	RecipeCostService_UpdateExpense_FullMethodName        = "/" + ServiceName + "/UpdateExpense"
	RecipeCostService_DeleteExpense_FullMethodName        = "/" + ServiceName + "/DeleteExpense"
	RecipeCostService_ListExpenses_FullMethodName         = "/" + ServiceName + "/ListExpenses"
	RecipeCostService_RegisterTax_FullMethodName          = "/" + ServiceName + "/RegisterTax"
	RecipeCostService_RecordTaxPayment_FullMethodName     = "/" + ServiceName + "/RecordTaxPayment"
	RecipeCostService_ListTaxes_FullMethodName            = "/" + ServiceName + "/ListTaxes"
	RecipeCostService_ListTaxPayments_FullMethodName      = "/" + ServiceName + "/ListTaxPayments"
	RecipeCostService_CreateRecipe_FullMethodName         = "/" + ServiceName + "/CreateRecipe"
	RecipeCostService_PriceRecipe_FullMethodName          = "/" + ServiceName + "/PriceRecipe"
	RecipeCostService_QuoteRecipe_FullMethodName          = "/" + ServiceName + "/QuoteRecipe"
	RecipeCostService_GetIngredientHistory_FullMethodName = "/" + ServiceName + "/GetIngredientHistory"
	RecipeCostService_GetPricingOverview_FullMethodName   = "/" + ServiceName + "/GetPricingOverview"
)

// RecipeCostServiceServer is the server API for RecipeCostService
type RecipeCostServiceServer interface {
	RegisterIngredient(context.Context, *RegisterIngredientRequest) (*RegisterIngredientResponse, error)
	UpdateIngredient(context.Context, *UpdateIngredientRequest) (*UpdateIngredientResponse, error)
	GetIngredient(context.Context, *GetIngredientRequest) (*GetIngredientResponse, error)
	DeleteIngredient(context.Context, *DeleteIngredientRequest) (*DeleteIngredientResponse, error)
	ListIngredients(context.Context, *ListIngredientsRequest) (*ListIngredientsResponse, error)
	RegisterExpense(context.Context, *RegisterExpenseRequest) (*RegisterExpenseResponse, error)
	UpdateExpense(context.Context, *UpdateExpenseRequest) (*UpdateExpenseResponse, error)
	DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error)
	ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	RegisterTax(context.Context, *RegisterTaxRequest) (*RegisterTaxResponse, error)
	RecordTaxPayment(context.Context, *RecordTaxPaymentRequest) (*RecordTaxPaymentResponse, error)
	ListTaxes(context.Context, *ListTaxesRequest) (*ListTaxesResponse, error)
	ListTaxPayments(context.Context, *ListTaxPaymentsRequest) (*ListTaxPaymentsResponse, error)
	CreateRecipe(context.Context, *CreateRecipeRequest) (*CreateRecipeResponse, error)
	PriceRecipe(context.Context, *PriceRecipeRequest) (*PriceRecipeResponse, error)
	QuoteRecipe(context.Context, *QuoteRecipeRequest) (*QuoteRecipeResponse, error)
	GetIngredientHistory(context.Context, *GetIngredientHistoryRequest) (*GetIngredientHistoryResponse, error)
	GetPricingOverview(context.Context, *GetPricingOverviewRequest) (*GetPricingOverviewResponse, error)
	mustEmbedUnimplementedRecipeCostServiceServer()
}

// UnimplementedRecipeCostServiceServer must be embedded by server implementations
// so that adding RPCs stays backwards compatible
type UnimplementedRecipeCostServiceServer struct{}

func (UnimplementedRecipeCostServiceServer) RegisterIngredient(context.Context, *RegisterIngredientRequest) (*RegisterIngredientResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterIngredient not implemented")
}

func (UnimplementedRecipeCostServiceServer) UpdateIngredient(context.Context, *UpdateIngredientRequest) (*UpdateIngredientResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateIngredient not implemented")
}

func (UnimplementedRecipeCostServiceServer) GetIngredient(context.Context, *GetIngredientRequest) (*GetIngredientResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetIngredient not implemented")
}

func (UnimplementedRecipeCostServiceServer) DeleteIngredient(context.Context, *DeleteIngredientRequest) (*DeleteIngredientResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteIngredient not implemented")
}

func (UnimplementedRecipeCostServiceServer) ListIngredients(context.Context, *ListIngredientsRequest) (*ListIngredientsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListIngredients not implemented")
}

func (UnimplementedRecipeCostServiceServer) RegisterExpense(context.Context, *RegisterExpenseRequest) (*RegisterExpenseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterExpense not implemented")
}

func (UnimplementedRecipeCostServiceServer) UpdateExpense(context.Context, *UpdateExpenseRequest) (*UpdateExpenseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateExpense not implemented")
}

func (UnimplementedRecipeCostServiceServer) DeleteExpense(context.Context, *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteExpense not implemented")
}

func (UnimplementedRecipeCostServiceServer) ListExpenses(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListExpenses not implemented")
}

func (UnimplementedRecipeCostServiceServer) RegisterTax(context.Context, *RegisterTaxRequest) (*RegisterTaxResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterTax not implemented")
}

func (UnimplementedRecipeCostServiceServer) RecordTaxPayment(context.Context, *RecordTaxPaymentRequest) (*RecordTaxPaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RecordTaxPayment not implemented")
}

func (UnimplementedRecipeCostServiceServer) ListTaxes(context.Context, *ListTaxesRequest) (*ListTaxesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTaxes not implemented")
}

func (UnimplementedRecipeCostServiceServer) ListTaxPayments(context.Context, *ListTaxPaymentsRequest) (*ListTaxPaymentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTaxPayments not implemented")
}

func (UnimplementedRecipeCostServiceServer) CreateRecipe(context.Context, *CreateRecipeRequest) (*CreateRecipeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateRecipe not implemented")
}

func (UnimplementedRecipeCostServiceServer) PriceRecipe(context.Context, *PriceRecipeRequest) (*PriceRecipeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PriceRecipe not implemented")
}

func (UnimplementedRecipeCostServiceServer) QuoteRecipe(context.Context, *QuoteRecipeRequest) (*QuoteRecipeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method QuoteRecipe not implemented")
}

func (UnimplementedRecipeCostServiceServer) GetIngredientHistory(context.Context, *GetIngredientHistoryRequest) (*GetIngredientHistoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetIngredientHistory not implemented")
}

func (UnimplementedRecipeCostServiceServer) GetPricingOverview(context.Context, *GetPricingOverviewRequest) (*GetPricingOverviewResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPricingOverview not implemented")
}

func (UnimplementedRecipeCostServiceServer) mustEmbedUnimplementedRecipeCostServiceServer() {}

// RegisterRecipeCostServiceServer registers srv on the gRPC server
func RegisterRecipeCostServiceServer(s grpc.ServiceRegistrar, srv RecipeCostServiceServer) {
	s.RegisterService(&RecipeCostService_ServiceDesc, srv)
}

// unaryHandler adapts a typed server method to a grpc.MethodHandler
func unaryHandler[Req, Resp any](
	fullMethod string,
	call func(RecipeCostServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RecipeCostServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RecipeCostServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// RecipeCostService_ServiceDesc is the grpc.ServiceDesc for RecipeCostService
var RecipeCostService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RecipeCostServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterIngredient",
			Handler:    unaryHandler(RecipeCostService_RegisterIngredient_FullMethodName, RecipeCostServiceServer.RegisterIngredient),
		},
		{
			MethodName: "UpdateIngredient",
			Handler:    unaryHandler(RecipeCostService_UpdateIngredient_FullMethodName, RecipeCostServiceServer.UpdateIngredient),
		},
		{
			MethodName: "GetIngredient",
			Handler:    unaryHandler(RecipeCostService_GetIngredient_FullMethodName, RecipeCostServiceServer.GetIngredient),
		},
		{
			MethodName: "DeleteIngredient",
			Handler:    unaryHandler(RecipeCostService_DeleteIngredient_FullMethodName, RecipeCostServiceServer.DeleteIngredient),
		},
		{
			MethodName: "ListIngredients",
			Handler:    unaryHandler(RecipeCostService_ListIngredients_FullMethodName, RecipeCostServiceServer.ListIngredients),
		},
		{
			MethodName: "RegisterExpense",
			Handler:    unaryHandler(RecipeCostService_RegisterExpense_FullMethodName, RecipeCostServiceServer.RegisterExpense),
		},
		{
			MethodName: "UpdateExpense",
			Handler:    unaryHandler(RecipeCostService_UpdateExpense_FullMethodName, RecipeCostServiceServer.UpdateExpense),
		},
		{
			MethodName: "DeleteExpense",
			Handler:    unaryHandler(RecipeCostService_DeleteExpense_FullMethodName, RecipeCostServiceServer.DeleteExpense),
		},
		{
			MethodName: "ListExpenses",
			Handler:    unaryHandler(RecipeCostService_ListExpenses_FullMethodName, RecipeCostServiceServer.ListExpenses),
		},
		{
			MethodName: "RegisterTax",
			Handler:    unaryHandler(RecipeCostService_RegisterTax_FullMethodName, RecipeCostServiceServer.RegisterTax),
		},
		{
			MethodName: "RecordTaxPayment",
			Handler:    unaryHandler(RecipeCostService_RecordTaxPayment_FullMethodName, RecipeCostServiceServer.RecordTaxPayment),
		},
		{
			MethodName: "ListTaxes",
			Handler:    unaryHandler(RecipeCostService_ListTaxes_FullMethodName, RecipeCostServiceServer.ListTaxes),
		},
		{
			MethodName: "ListTaxPayments",
			Handler:    unaryHandler(RecipeCostService_ListTaxPayments_FullMethodName, RecipeCostServiceServer.ListTaxPayments),
		},
		{
			MethodName: "CreateRecipe",
			Handler:    unaryHandler(RecipeCostService_CreateRecipe_FullMethodName, RecipeCostServiceServer.CreateRecipe),
		},
		{
			MethodName: "PriceRecipe",
			Handler:    unaryHandler(RecipeCostService_PriceRecipe_FullMethodName, RecipeCostServiceServer.PriceRecipe),
		},
		{
			MethodName: "QuoteRecipe",
			Handler:    unaryHandler(RecipeCostService_QuoteRecipe_FullMethodName, RecipeCostServiceServer.QuoteRecipe),
		},
		{
			MethodName: "GetIngredientHistory",
			Handler:    unaryHandler(RecipeCostService_GetIngredientHistory_FullMethodName, RecipeCostServiceServer.GetIngredientHistory),
		},
		{
			MethodName: "GetPricingOverview",
			Handler:    unaryHandler(RecipeCostService_GetPricingOverview_FullMethodName, RecipeCostServiceServer.GetPricingOverview),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "recipecost/v1/recipecost.proto",
}

// RecipeCostServiceClient is the client API for RecipeCostService
type RecipeCostServiceClient interface {
	RegisterIngredient(ctx context.Context, in *RegisterIngredientRequest, opts ...grpc.CallOption) (*RegisterIngredientResponse, error)
	UpdateIngredient(ctx context.Context, in *UpdateIngredientRequest, opts ...grpc.CallOption) (*UpdateIngredientResponse, error)
	GetIngredient(ctx context.Context, in *GetIngredientRequest, opts ...grpc.CallOption) (*GetIngredientResponse, error)
	DeleteIngredient(ctx context.Context, in *DeleteIngredientRequest, opts ...grpc.CallOption) (*DeleteIngredientResponse, error)
	ListIngredients(ctx context.Context, in *ListIngredientsRequest, opts ...grpc.CallOption) (*ListIngredientsResponse, error)
	RegisterExpense(ctx context.Context, in *RegisterExpenseRequest, opts ...grpc.CallOption) (*RegisterExpenseResponse, error)
	UpdateExpense(ctx context.Context, in *UpdateExpenseRequest, opts ...grpc.CallOption) (*UpdateExpenseResponse, error)
	DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error)
	ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error)
	RegisterTax(ctx context.Context, in *RegisterTaxRequest, opts ...grpc.CallOption) (*RegisterTaxResponse, error)
	RecordTaxPayment(ctx context.Context, in *RecordTaxPaymentRequest, opts ...grpc.CallOption) (*RecordTaxPaymentResponse, error)
	ListTaxes(ctx context.Context, in *ListTaxesRequest, opts ...grpc.CallOption) (*ListTaxesResponse, error)
	ListTaxPayments(ctx context.Context, in *ListTaxPaymentsRequest, opts ...grpc.CallOption) (*ListTaxPaymentsResponse, error)
	CreateRecipe(ctx context.Context, in *CreateRecipeRequest, opts ...grpc.CallOption) (*CreateRecipeResponse, error)
	PriceRecipe(ctx context.Context, in *PriceRecipeRequest, opts ...grpc.CallOption) (*PriceRecipeResponse, error)
	QuoteRecipe(ctx context.Context, in *QuoteRecipeRequest, opts ...grpc.CallOption) (*QuoteRecipeResponse, error)
	GetIngredientHistory(ctx context.Context, in *GetIngredientHistoryRequest, opts ...grpc.CallOption) (*GetIngredientHistoryResponse, error)
	GetPricingOverview(ctx context.Context, in *GetPricingOverviewRequest, opts ...grpc.CallOption) (*GetPricingOverviewResponse, error)
}

type recipeCostServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewRecipeCostServiceClient creates a client that speaks the JSON content-subtype
func NewRecipeCostServiceClient(cc grpc.ClientConnInterface) RecipeCostServiceClient {
	return &recipeCostServiceClient{cc: cc}
}

func (c *recipeCostServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOpts...)
}

func (c *recipeCostServiceClient) RegisterIngredient(ctx context.Context, in *RegisterIngredientRequest, opts ...grpc.CallOption) (*RegisterIngredientResponse, error) {
	out := new(RegisterIngredientResponse)
	if err := c.invoke(ctx, RecipeCostService_RegisterIngredient_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) UpdateIngredient(ctx context.Context, in *UpdateIngredientRequest, opts ...grpc.CallOption) (*UpdateIngredientResponse, error) {
	out := new(UpdateIngredientResponse)
	if err := c.invoke(ctx, RecipeCostService_UpdateIngredient_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) GetIngredient(ctx context.Context, in *GetIngredientRequest, opts ...grpc.CallOption) (*GetIngredientResponse, error) {
	out := new(GetIngredientResponse)
	if err := c.invoke(ctx, RecipeCostService_GetIngredient_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) DeleteIngredient(ctx context.Context, in *DeleteIngredientRequest, opts ...grpc.CallOption) (*DeleteIngredientResponse, error) {
	out := new(DeleteIngredientResponse)
	if err := c.invoke(ctx, RecipeCostService_DeleteIngredient_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) ListIngredients(ctx context.Context, in *ListIngredientsRequest, opts ...grpc.CallOption) (*ListIngredientsResponse, error) {
	out := new(ListIngredientsResponse)
	if err := c.invoke(ctx, RecipeCostService_ListIngredients_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) RegisterExpense(ctx context.Context, in *RegisterExpenseRequest, opts ...grpc.CallOption) (*RegisterExpenseResponse, error) {
	out := new(RegisterExpenseResponse)
	if err := c.invoke(ctx, RecipeCostService_RegisterExpense_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) UpdateExpense(ctx context.Context, in *UpdateExpenseRequest, opts ...grpc.CallOption) (*UpdateExpenseResponse, error) {
	out := new(UpdateExpenseResponse)
	if err := c.invoke(ctx, RecipeCostService_UpdateExpense_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) DeleteExpense(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*DeleteExpenseResponse, error) {
	out := new(DeleteExpenseResponse)
	if err := c.invoke(ctx, RecipeCostService_DeleteExpense_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) ListExpenses(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	out := new(ListExpensesResponse)
	if err := c.invoke(ctx, RecipeCostService_ListExpenses_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) RegisterTax(ctx context.Context, in *RegisterTaxRequest, opts ...grpc.CallOption) (*RegisterTaxResponse, error) {
	out := new(RegisterTaxResponse)
	if err := c.invoke(ctx, RecipeCostService_RegisterTax_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) RecordTaxPayment(ctx context.Context, in *RecordTaxPaymentRequest, opts ...grpc.CallOption) (*RecordTaxPaymentResponse, error) {
	out := new(RecordTaxPaymentResponse)
	if err := c.invoke(ctx, RecipeCostService_RecordTaxPayment_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) ListTaxes(ctx context.Context, in *ListTaxesRequest, opts ...grpc.CallOption) (*ListTaxesResponse, error) {
	out := new(ListTaxesResponse)
	if err := c.invoke(ctx, RecipeCostService_ListTaxes_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) ListTaxPayments(ctx context.Context, in *ListTaxPaymentsRequest, opts ...grpc.CallOption) (*ListTaxPaymentsResponse, error) {
	out := new(ListTaxPaymentsResponse)
	if err := c.invoke(ctx, RecipeCostService_ListTaxPayments_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) CreateRecipe(ctx context.Context, in *CreateRecipeRequest, opts ...grpc.CallOption) (*CreateRecipeResponse, error) {
	out := new(CreateRecipeResponse)
	if err := c.invoke(ctx, RecipeCostService_CreateRecipe_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) PriceRecipe(ctx context.Context, in *PriceRecipeRequest, opts ...grpc.CallOption) (*PriceRecipeResponse, error) {
	out := new(PriceRecipeResponse)
	if err := c.invoke(ctx, RecipeCostService_PriceRecipe_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) QuoteRecipe(ctx context.Context, in *QuoteRecipeRequest, opts ...grpc.CallOption) (*QuoteRecipeResponse, error) {
	out := new(QuoteRecipeResponse)
	if err := c.invoke(ctx, RecipeCostService_QuoteRecipe_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) GetIngredientHistory(ctx context.Context, in *GetIngredientHistoryRequest, opts ...grpc.CallOption) (*GetIngredientHistoryResponse, error) {
	out := new(GetIngredientHistoryResponse)
	if err := c.invoke(ctx, RecipeCostService_GetIngredientHistory_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *recipeCostServiceClient) GetPricingOverview(ctx context.Context, in *GetPricingOverviewRequest, opts ...grpc.CallOption) (*GetPricingOverviewResponse, error) {
	out := new(GetPricingOverviewResponse)
	if err := c.invoke(ctx, RecipeCostService_GetPricingOverview_FullMethodName, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
