package controllers

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	berg "github.com/norelect/berg-challenge-controller/api/v1"
)

var _ = Describe("ChallengeInstance Controller", func() {
	const (
		timeout  = time.Second * 10
		interval = time.Millisecond * 250
	)

	var class *berg.ChallengeInstanceClass

	BeforeEach(func() {
		class = &berg.ChallengeInstanceClass{
			ObjectMeta: metav1.ObjectMeta{Name: "default"},
			Spec: berg.ChallengeInstanceClassSpec{
				Gateway: berg.GatewayConfig{
					Name:             "berg-gateway",
					Namespace:        "berg",
					HTTPListenerName: "http",
					TLSListenerName:  "tls",
					Domain:           "challenges.test",
					HTTPPort:         80,
					TLSPort:          443,
				},
				ChallengeNamespace: "berg",
			},
		}
		Expect(k8sClient.Create(ctx, class)).To(Succeed())
	})

	AfterEach(func() {
		Expect(k8sClient.Delete(ctx, class)).To(Succeed())
	})

	Context("happy path, static flag", func() {
		var challenge *berg.Challenge
		var instance *berg.ChallengeInstance
		const ownerID = "a1b2c3d4-e5f6-7890-abcd-ef1234567890"

		BeforeEach(func() {
			challenge = &berg.Challenge{
				ObjectMeta: metav1.ObjectMeta{Name: "nginx", Namespace: "berg"},
				Spec: berg.ChallengeSpec{
					Author:      "tester",
					Description: "a static nginx challenge",
					Flag:        "flag{test}",
					FlagFormat:  "flag{...}",
					Difficulty:  "easy",
					Categories:  []string{"web"},
					Containers: []berg.ContainerSpec{
						{
							Hostname: "nginx",
							Image:    "nginx:latest",
							Ports: []berg.PortSpec{
								{Port: 80, Protocol: "tcp", Type: berg.PortTypePublic},
							},
						},
					},
				},
			}
			Expect(k8sClient.Create(ctx, challenge)).To(Succeed())

			instance = &berg.ChallengeInstance{
				ObjectMeta: metav1.ObjectMeta{Name: "nginx-" + ownerID},
				Spec: berg.ChallengeInstanceSpec{
					ChallengeRef:  berg.ChallengeRef{Name: "nginx", Namespace: "berg"},
					OwnerID:       ownerID,
					Flag:          "flag{test}",
					InstanceClass: "default",
					Timeout:       "30m",
				},
			}
			Expect(k8sClient.Create(ctx, instance)).To(Succeed())
		})

		AfterEach(func() {
			_ = k8sClient.Delete(ctx, instance)
			_ = k8sClient.Delete(ctx, challenge)
		})

		It("assigns an instance ID and an expiry", func() {
			got := &berg.ChallengeInstance{}
			Eventually(func() string {
				_ = k8sClient.Get(ctx, types.NamespacedName{Name: instance.Name}, got)
				return got.Status.InstanceID
			}, timeout, interval).ShouldNot(BeEmpty())

			Expect(got.Status.ExpiresAt).NotTo(BeNil())
		})

		It("materialises the namespace and reaches Running", func() {
			got := &berg.ChallengeInstance{}
			Eventually(func() berg.Phase {
				_ = k8sClient.Get(ctx, types.NamespacedName{Name: instance.Name}, got)
				return got.Status.Phase
			}, timeout, interval).Should(Equal(berg.PhaseRunning))

			Expect(got.Status.Namespace).NotTo(BeEmpty())

			ns := &corev1.Namespace{}
			Expect(k8sClient.Get(ctx, types.NamespacedName{Name: got.Status.Namespace}, ns)).To(Succeed())

			svc := &corev1.Service{}
			Expect(k8sClient.Get(ctx, types.NamespacedName{Name: "nginx", Namespace: got.Status.Namespace}, svc)).To(Succeed())
		})
	})

	Context("flag validation", func() {
		var challenge *berg.Challenge
		var instance *berg.ChallengeInstance
		const ownerID = "b2c3d4e5-f607-8901-bcde-f12345678901"

		BeforeEach(func() {
			challenge = &berg.Challenge{
				ObjectMeta: metav1.ObjectMeta{Name: "dynamic-web", Namespace: "berg"},
				Spec: berg.ChallengeSpec{
					Author:      "tester",
					Description: "a dynamic flag challenge",
					Flag:        "",
					FlagFormat:  "flag{...}",
					Difficulty:  "medium",
					Categories:  []string{"web"},
					Containers: []berg.ContainerSpec{
						{
							Hostname: "web",
							Image:    "web:latest",
							Ports: []berg.PortSpec{
								{Port: 8080, Protocol: "tcp", Type: berg.PortTypeInternal},
							},
							DynamicFlag: &berg.DynamicFlag{
								Env: &berg.EnvFlag{Name: "FLAG"},
							},
						},
					},
				},
			}
			Expect(k8sClient.Create(ctx, challenge)).To(Succeed())

			instance = &berg.ChallengeInstance{
				ObjectMeta: metav1.ObjectMeta{Name: "dynamic-web-" + ownerID},
				Spec: berg.ChallengeInstanceSpec{
					ChallengeRef:  berg.ChallengeRef{Name: "dynamic-web", Namespace: "berg"},
					OwnerID:       ownerID,
					Flag:          "", // missing: required since the container declares a dynamic flag
					InstanceClass: "default",
					Timeout:       "30m",
				},
			}
			Expect(k8sClient.Create(ctx, instance)).To(Succeed())
		})

		AfterEach(func() {
			_ = k8sClient.Delete(ctx, instance)
			_ = k8sClient.Delete(ctx, challenge)
		})

		It("fails the instance instead of creating resources", func() {
			got := &berg.ChallengeInstance{}
			Eventually(func() berg.Phase {
				_ = k8sClient.Get(ctx, types.NamespacedName{Name: instance.Name}, got)
				return got.Status.Phase
			}, timeout, interval).Should(Equal(berg.PhaseFailed))

			cond := got.Status.FindCondition("FlagValidation")
			Expect(cond).NotTo(BeNil())
			Expect(cond.Status).To(Equal(berg.ConditionFalse))
		})
	})

	Context("lookup failures", func() {
		It("requeues non-retryably when the Challenge is missing", func() {
			instance := &berg.ChallengeInstance{
				ObjectMeta: metav1.ObjectMeta{Name: "ghost-ownerid123"},
				Spec: berg.ChallengeInstanceSpec{
					ChallengeRef:  berg.ChallengeRef{Name: "does-not-exist", Namespace: "berg"},
					OwnerID:       "c3d4e5f6-0718-9012-cdef-123456789012",
					Flag:          "flag{test}",
					InstanceClass: "default",
					Timeout:       "30m",
				},
			}
			Expect(k8sClient.Create(ctx, instance)).To(Succeed())
			defer func() { _ = k8sClient.Delete(ctx, instance) }()

			got := &berg.ChallengeInstance{}
			Eventually(func() string {
				_ = k8sClient.Get(ctx, types.NamespacedName{Name: instance.Name}, got)
				return got.Status.InstanceID
			}, timeout, interval).ShouldNot(BeEmpty())

			Consistently(func() berg.Phase {
				_ = k8sClient.Get(ctx, types.NamespacedName{Name: instance.Name}, got)
				return got.Status.Phase
			}, time.Second*2, interval).Should(Equal(berg.PhasePending))
		})
	})
})
