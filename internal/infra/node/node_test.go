package node_test

import (
	"biometric-terminal/internal/infra/node"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).To(gomega.Equal(node.Version))
			gomega.Expect(nodeInfo.CommitHash).To(gomega.Equal(node.CommitHash))
			gomega.Expect(nodeInfo.StartedAt.IsZero()).To(gomega.BeFalse())
		})

		ginkgo.It("should return a valid UUID for node ID", func() {
			_, err := uuid.Parse(node.GetNodeInfo().ID)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should return the same identity on multiple calls", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()

			gomega.Expect(first.ID).To(gomega.Equal(second.ID))
			gomega.Expect(first.StartedAt).To(gomega.Equal(second.StartedAt))
		})
	})
})
