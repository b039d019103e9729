package serializer

import (
	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
)

// ProtobufToJSON renders message as indented JSON.
func ProtobufToJSON(message proto.Message) (string, error) {
	marshaler := jsonpb.Marshaler{
		EnumsAsInts:  true,
		EmitDefaults: true,
		Indent:       " ",
		OrigName:     false,
	}
	return marshaler.MarshalToString(message)
}

// JSONToProtobuf parses data into message.
func JSONToProtobuf(data string, message proto.Message) error {
	return jsonpb.UnmarshalString(data, message)
}
