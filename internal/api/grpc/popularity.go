package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
)

// RepositoryRequest asks for popularity of a single repository.
type RepositoryRequest struct {
	RepositoryName string `json:"repository_name"`
}

// OrganizationRequest asks for popularity of all organization's repositories.
type OrganizationRequest struct {
	OrgName string `json:"org_name"`
}

// Popularity is a scored repository.
type Popularity struct {
	Score     int64  `json:"score"`
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	IsPopular bool   `json:"is_popular"`
}

// PopularityList is a list of scored repositories.
type PopularityList struct {
	Items []*Popularity `json:"items"`
}

// PopularityServer is the server API for popularity service.
type PopularityServer interface {
	Repository(context.Context, *RepositoryRequest) (*Popularity, error)
	Organization(context.Context, *OrganizationRequest) (*PopularityList, error)
}

// RegisterPopularityServer registers popularity service implementation in grpc server.
func RegisterPopularityServer(s *grpc.Server, srv PopularityServer) {
	s.RegisterService(&popularityServiceDesc, srv)
}

const (
	serviceName            = "popularity.Popularity"
	repositoryFullMethod   = "/" + serviceName + "/Repository"
	organizationFullMethod = "/" + serviceName + "/Organization"
)

func repositoryHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RepositoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PopularityServer).Repository(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: repositoryFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PopularityServer).Repository(ctx, req.(*RepositoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func organizationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(OrganizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PopularityServer).Organization(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: organizationFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PopularityServer).Organization(ctx, req.(*OrganizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var popularityServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*PopularityServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Repository",
			Handler:    repositoryHandler,
		},
		{
			MethodName: "Organization",
			Handler:    organizationHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "popularity",
}

// PopularityClient is the client API for popularity service.
type PopularityClient interface {
	Repository(ctx context.Context, in *RepositoryRequest, opts ...grpc.CallOption) (*Popularity, error)
	Organization(ctx context.Context, in *OrganizationRequest, opts ...grpc.CallOption) (*PopularityList, error)
}

type popularityClient struct {
	cc grpc.ClientConnInterface
}

// NewPopularityClient creates popularity service client using given connection.
func NewPopularityClient(cc grpc.ClientConnInterface) PopularityClient {
	return &popularityClient{cc: cc}
}

func (c *popularityClient) Repository(ctx context.Context, in *RepositoryRequest, opts ...grpc.CallOption) (*Popularity, error) {
	out := new(Popularity)
	if err := c.cc.Invoke(ctx, repositoryFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *popularityClient) Organization(ctx context.Context, in *OrganizationRequest, opts ...grpc.CallOption) (*PopularityList, error) {
	out := new(PopularityList)
	if err := c.cc.Invoke(ctx, organizationFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
