package rpc

import (
	"errors"
	"net"
	netrpc "net/rpc"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/caffee/division/division"
	"github.com/caffee/division/sample"
)

func startArith(t *testing.T) *Client {
	t.Helper()

	server, err := NewServer(zap.NewNop())
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = Serve(listener, server)
	}()

	client, err := Dial(listener.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
		_ = listener.Close()
	})
	return client
}

func TestArithDivide(t *testing.T) {
	arith := &Arith{logger: zap.NewNop()}

	var q Quotient
	require.NoError(t, arith.Divide(&Args{A: 4, B: 2}, &q))
	require.Equal(t, 2.0, q.Quo)

	err := arith.Divide(&Args{A: 0, B: 0}, &q)
	require.Equal(t, division.BothAreZero, err)

	var reply Reply
	require.NoError(t, arith.TryDivide(&Args{A: 1, B: 0}, &reply))
	require.Equal(t, "DivisorIsZero", reply.Err)
	require.Equal(t, division.DivisorIsZero.Message(), reply.Message)
}

func TestClient(t *testing.T) {
	client := startArith(t)

	tests := []struct {
		a, b    float64
		want    float64
		wantErr division.DivByZero
	}{
		{a: 1, b: 0, wantErr: division.DivisorIsZero},
		{a: 0, b: 0, wantErr: division.BothAreZero},
		{a: 4, b: 2, want: 2},
		{a: 0, b: 5, want: 0},
	}
	for _, tt := range tests {
		q, err := client.Divide(tt.a, tt.b)
		r, tryErr := client.TryDivide(tt.a, tt.b)
		require.NoError(t, tryErr)

		if tt.wantErr != 0 {
			var e division.DivByZero
			require.True(t, errors.As(err, &e), "Divide(%v, %v): %v", tt.a, tt.b, err)
			require.Equal(t, tt.wantErr, e)
			require.Equal(t, division.Failure(tt.wantErr), r)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tt.want, q)
		require.Equal(t, division.Quotient(tt.want), r)
	}
}

func TestClientMatchesLocal(t *testing.T) {
	client := startArith(t)

	for _, ops := range sample.NewOperandsList(50) {
		local := division.Divide(ops.Dividend, ops.Divisor)

		remote, err := client.TryDivide(ops.Dividend, ops.Divisor)
		require.NoError(t, err)
		require.Equal(t, local, remote)

		got, ok := <-client.DivideAsync(ops.Dividend, ops.Divisor)
		require.True(t, ok)
		require.Equal(t, local, got)
	}
}

func TestRestoreError(t *testing.T) {
	require.Equal(t, division.BothAreZero, restoreError(netrpc.ServerError(division.BothAreZero.Message())))

	other := netrpc.ServerError("rpc: can't find method Arith.Modulo")
	require.Equal(t, other, restoreError(other))
	require.Equal(t, netrpc.ErrShutdown, restoreError(netrpc.ErrShutdown))
}

func TestUnknownMethod(t *testing.T) {
	client := startArith(t)

	err := client.client.Call("Arith.Modulo", &Args{A: 1, B: 2}, &Quotient{})
	require.Error(t, err)
	_, ok := division.As(restoreError(err))
	require.False(t, ok)
}
