package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodec_Registered(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, CodecName, c.Name())
}

func TestCodec_Structs(t *testing.T) {
	b, err := Codec{}.Marshal(&AddToListRequest{DestinationName: "Swiss Alps"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"destination_name":"Swiss Alps"}`, string(b))

	var out AddToListRequest
	require.NoError(t, Codec{}.Unmarshal(b, &out))
	assert.Equal(t, "Swiss Alps", out.DestinationName)

	assert.Error(t, Codec{}.Unmarshal([]byte("{"), &out))
}

func TestCodec_ProtoMessages(t *testing.T) {
	b, err := Codec{}.Marshal(&emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))

	b, err = Codec{}.Marshal(wrapperspb.String("paris"))
	require.NoError(t, err)

	got := &wrapperspb.StringValue{}
	require.NoError(t, Codec{}.Unmarshal(b, got))
	assert.Equal(t, "paris", got.GetValue())
}
